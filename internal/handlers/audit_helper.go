package handlers

import (
	"github.com/BruksfildServices01/barber-booking/internal/audit"
)

func writeAudit(
	d *audit.Dispatcher,
	shopID uint,
	action string,
	entity string,
	entityID *uint,
	meta any,
) {
	d.Dispatch(audit.Event{
		ShopID:   shopID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: meta,
	})
}
