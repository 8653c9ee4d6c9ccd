package cart

import (
	"fmt"
	"time"

	"pizza_delivery/internal/models"
)

// Item is one line in the cart. UnitPrice already includes any selected
// extras; Name may embed the extras description.
type Item struct {
	Key       string           `json:"key"`
	PizzaID   uint             `json:"pizza_id"`
	Name      string           `json:"name"`
	Size      models.PizzaSize `json:"size"`
	UnitPrice int              `json:"unit_price"`
	Quantity  int              `json:"quantity"`
	Image     string           `json:"image"`
}

// LineKey identifies a plain pizza+size combination. Adding the same
// combination again merges quantities instead of creating a duplicate row.
func LineKey(pizzaID uint, size models.PizzaSize) string {
	return fmt.Sprintf("%d-%s", pizzaID, size)
}

// LineKeyWithExtras makes a combination with extras distinct from the plain
// line and from other extras selections by appending the add time.
func LineKeyWithExtras(pizzaID uint, size models.PizzaSize, now time.Time) string {
	return fmt.Sprintf("%d-%s-%d", pizzaID, size, now.UnixMilli())
}
