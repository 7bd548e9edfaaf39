package client

import "sync"

// Tags usadas na invalidação após mutações.
const (
	TagWarehouses = "warehouses"
	TagYards      = "yards"
	TagStats      = "stats"
)

// WarehouseTag identifica as consultas de um armazém específico.
func WarehouseTag(id int64) string { return "warehouse:" + itoa(id) }

// YardTag identifica as consultas de um pátio específico.
func YardTag(id int64) string { return "yard:" + itoa(id) }

type cacheEntry struct {
	body []byte
	tags []string
}

// QueryCache memoriza corpos de resposta de consultas por chave.
// Cada entrada carrega tags; Invalidate remove todas as entradas que tenham qualquer uma delas.
// Os valores são guardados como JSON bruto, então cada leitura decodifica uma cópia nova.
type QueryCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

func NewQueryCache() *QueryCache {
	return &QueryCache{entries: map[string]cacheEntry{}}
}

// Get devolve o corpo memorizado para key.
func (c *QueryCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	return e.body, ok
}

// Set grava (ou sobrescreve) a entrada. A última resposta concluída vence.
func (c *QueryCache) Set(key string, body []byte, tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{body: body, tags: tags}
}

// Invalidate marca como obsoletas as entradas com qualquer uma das tags.
func (c *QueryCache) Invalidate(tags ...string) {
	if len(tags) == 0 {
		return
	}
	stale := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		stale[t] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		for _, t := range e.tags {
			if _, ok := stale[t]; ok {
				delete(c.entries, key)
				break
			}
		}
	}
}

// Len devolve o número de entradas válidas.
func (c *QueryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
