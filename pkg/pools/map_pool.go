package pools

import (
	"sync"
)

// Float64MapPool pools map[string]float64 used for per-source score
// accumulation. Brandes betweenness allocates several of these per source
// pass; pooling keeps allocation pressure flat on large graphs.
type Float64MapPool struct {
	pool sync.Pool
}

// NewFloat64MapPool creates a new float64 map pool.
func NewFloat64MapPool() *Float64MapPool {
	return &Float64MapPool{
		pool: sync.Pool{
			New: func() any {
				return make(map[string]float64, 64)
			},
		},
	}
}

// Get returns a cleared map from the pool.
func (p *Float64MapPool) Get() map[string]float64 {
	m, ok := p.pool.Get().(map[string]float64)
	if !ok {
		return make(map[string]float64, 64)
	}
	clear(m)
	return m
}

// Put returns a map to the pool.
func (p *Float64MapPool) Put(m map[string]float64) {
	if m == nil || len(m) > 100000 {
		return // Don't pool nil or very large maps
	}
	p.pool.Put(m)
}

// IntMapPool pools map[string]int used for BFS distance tables.
type IntMapPool struct {
	pool sync.Pool
}

// NewIntMapPool creates a new int map pool.
func NewIntMapPool() *IntMapPool {
	return &IntMapPool{
		pool: sync.Pool{
			New: func() any {
				return make(map[string]int, 64)
			},
		},
	}
}

// Get returns a cleared map from the pool.
func (p *IntMapPool) Get() map[string]int {
	m, ok := p.pool.Get().(map[string]int)
	if !ok {
		return make(map[string]int, 64)
	}
	clear(m)
	return m
}

// Put returns a map to the pool.
func (p *IntMapPool) Put(m map[string]int) {
	if m == nil || len(m) > 100000 {
		return
	}
	p.pool.Put(m)
}

// Default global pools
var (
	defaultFloat64MapPool = NewFloat64MapPool()
	defaultIntMapPool     = NewIntMapPool()
)

// GetFloat64Map returns a float64 map from the default pool.
func GetFloat64Map() map[string]float64 {
	return defaultFloat64MapPool.Get()
}

// PutFloat64Map returns a float64 map to the default pool.
func PutFloat64Map(m map[string]float64) {
	defaultFloat64MapPool.Put(m)
}

// GetIntMap returns an int map from the default pool.
func GetIntMap() map[string]int {
	return defaultIntMapPool.Get()
}

// PutIntMap returns an int map to the default pool.
func PutIntMap(m map[string]int) {
	defaultIntMapPool.Put(m)
}
