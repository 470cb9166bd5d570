package cache

import (
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
)

// SlotsLRU caches computed slot lists. Keys carry the store revision, so any
// write makes older entries unreachable and they age out of the LRU.
type SlotsLRU struct {
	cache  *lru.Cache[domain.SlotKey, []string]
	logger *slog.Logger
}

func NewSlotsLRU(size int, logger *slog.Logger) (*SlotsLRU, error) {
	c, err := lru.New[domain.SlotKey, []string](size)
	if err != nil {
		logger.Error("cache.slots.init_failed", "error", err, "size", size)
		return nil, err
	}

	return &SlotsLRU{
		cache:  c,
		logger: logger.With("module", "SlotsCache"),
	}, nil
}

func (c *SlotsLRU) Get(key domain.SlotKey) ([]string, bool) {
	slots, ok := c.cache.Get(key)
	if !ok {
		c.logger.Debug("cache.slots.miss", "barber_id", key.BarberID, "date", key.Date)
		return nil, false
	}

	c.logger.Debug("cache.slots.hit", "barber_id", key.BarberID, "date", key.Date, "count", len(slots))
	return append([]string{}, slots...), true
}

func (c *SlotsLRU) Store(key domain.SlotKey, slots []string) {
	c.cache.Add(key, append([]string{}, slots...))
}

func (c *SlotsLRU) Len() int {
	return c.cache.Len()
}

var _ domain.SlotCache = (*SlotsLRU)(nil)
