package bubble

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// CachedGenerator はサイズとスタイルの組をキーに輪郭をメモ化する PathGenerator です。
// 叫び・電撃のように揺らぎを含む形状も、キーが同じ間は同じ輪郭を返すのだ。
type CachedGenerator struct {
	gen   PathGenerator
	cache *cache.Cache
}

// NewCachedGenerator は gen の結果を expiration の間保持するキャッシュを作ります。
func NewCachedGenerator(gen PathGenerator, expiration, cleanupInterval time.Duration) *CachedGenerator {
	return &CachedGenerator{
		gen:   gen,
		cache: cache.New(expiration, cleanupInterval),
	}
}

// Generate はキャッシュ済みの結果があればそのコピーを、無ければ計算して保存した結果を返します。
func (c *CachedGenerator) Generate(width, height float64, style Style) Result {
	width, height = minSize(width), minSize(height)
	key := style.cacheKey(width, height)

	if v, found := c.cache.Get(key); found {
		if res, ok := v.(Result); ok {
			// 内部キャッシュが呼び出し元に変更されないようにコピーを返す
			return res.Clone()
		}
	}

	res := c.gen.Generate(width, height, style)
	c.cache.Set(key, res.Clone(), cache.DefaultExpiration)
	return res
}

// Len はキャッシュされている輪郭の数です。
func (c *CachedGenerator) Len() int {
	return c.cache.ItemCount()
}

// Flush はキャッシュを空にします。
func (c *CachedGenerator) Flush() {
	c.cache.Flush()
}
