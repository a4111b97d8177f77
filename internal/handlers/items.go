package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pantrybase/pantrygo/internal/inventory"
	"github.com/pantrybase/pantrygo/internal/metadata"
	"github.com/pantrybase/pantrygo/internal/models"
	"github.com/pantrybase/pantrygo/internal/text"
)

// ItemView is an inventory record plus its derived display fields.
type ItemView struct {
	*models.InventoryItem
	Expression    string `json:"expression"`
	TotalQuantity string `json:"totalQuantity"`
	Updated       string `json:"updated"`
	ShelfLife     string `json:"shelfLife,omitempty"`
	ShelfSymbol   string `json:"shelfSymbol,omitempty"`
	ShelfColor    string `json:"shelfColor,omitempty"`
	ShelfMessage  string `json:"shelfMessage,omitempty"`
	Symbol        string `json:"symbol"`
	Color         string `json:"color"`
}

func newItemView(item *models.InventoryItem) ItemView {
	view := ItemView{
		InventoryItem: item,
		Expression:    text.FriendlyExpression(item, true),
		TotalQuantity: text.TotalQuantityString(item),
		Updated:       text.DaysSinceUpdatedString(metadata.DaysSinceUpdated(item.LastUpdated)),
		Symbol:        "?",
		Color:         "white",
	}
	if meta := metadata.GetByItem(item); meta != nil {
		view.Symbol = meta.Symbol
		if meta.BackgroundColor != "" {
			view.Color = meta.BackgroundColor
		}
	}
	if life := metadata.ShelfLifeForItem(item); life != nil {
		view.ShelfLife = life.Name
		view.ShelfSymbol = life.Symbol
		view.ShelfColor = life.Color
		view.ShelfMessage = life.ExpiresInMessage
	}
	return view
}

// listItems returns every record with its classification and shelf
// life resolved
func (r *Router) listItems(w http.ResponseWriter, req *http.Request) {
	items := r.store.Items()
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, newItemView(item))
	}
	respondJSON(w, http.StatusOK, views)
}

// getItem returns one enriched record
func (r *Router) getItem(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	item := r.store.GetItem(id)
	if item == nil {
		respondError(w, http.StatusNotFound, "Item not found")
		return
	}
	respondJSON(w, http.StatusOK, newItemView(item))
}

// createItem validates, derives the id, and pushes cloud-first
func (r *Router) createItem(w http.ResponseWriter, req *http.Request) {
	var body models.InventoryItem
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if field := inventory.ValidateItem(&body); field != "" {
		respondError(w, http.StatusUnprocessableEntity, "Invalid field: "+field)
		return
	}

	item := models.NewInventoryItem(&body, r.store.UID())
	if r.store.ItemExists(item.ID) {
		respondError(w, http.StatusConflict, "An identical item already exists")
		return
	}

	added, err := r.store.AddItem(req.Context(), item, false)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Cloud write failed: "+err.Error())
		return
	}
	if !added {
		respondError(w, http.StatusConflict, "Cloud rejected the new item")
		return
	}
	respondJSON(w, http.StatusCreated, newItemView(item))
}

// updateItem applies changes to an existing record. Edits that change
// identity-bearing fields become a remove of the old id plus a create
// under the new one.
func (r *Router) updateItem(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	existing := r.store.GetItem(id)
	if existing == nil {
		respondError(w, http.StatusNotFound, "Item not found")
		return
	}

	var body models.InventoryItem
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if field := inventory.ValidateItem(&body); field != "" {
		respondError(w, http.StatusUnprocessableEntity, "Invalid field: "+field)
		return
	}

	updated := models.NewInventoryItem(&body, r.store.UID())

	// An edit that empties the record removes it
	if updated.ContainersOnHand <= models.OnHandEpsilon {
		removed, err := r.store.RemoveItem(req.Context(), id)
		if err != nil {
			respondError(w, http.StatusBadGateway, "Cloud write failed: "+err.Error())
			return
		}
		if !removed {
			respondError(w, http.StatusConflict, "Cloud did not confirm the delete")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{
			"message": "Item used up and removed",
			"id":      id,
		})
		return
	}

	if updated.ID == id {
		updated.LastUpdated = existing.LastUpdated
		ok, err := r.store.UpdateItem(req.Context(), updated)
		if err != nil {
			respondError(w, http.StatusBadGateway, "Cloud write failed: "+err.Error())
			return
		}
		if !ok {
			respondError(w, http.StatusConflict, "Cloud rejected the update")
			return
		}
		respondJSON(w, http.StatusOK, newItemView(updated))
		return
	}

	// Identity changed: the record moves to a new id
	if r.store.ItemExists(updated.ID) {
		respondError(w, http.StatusConflict, "An identical item already exists")
		return
	}
	removed, err := r.store.RemoveItem(req.Context(), id)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Cloud write failed: "+err.Error())
		return
	}
	if !removed {
		respondError(w, http.StatusConflict, "Cloud refused to release the old record")
		return
	}
	added, err := r.store.AddItem(req.Context(), updated, false)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Cloud write failed: "+err.Error())
		return
	}
	if !added {
		respondError(w, http.StatusConflict, "Cloud rejected the moved item")
		return
	}
	respondJSON(w, http.StatusOK, newItemView(updated))
}

// deleteItem removes a record, cloud first
func (r *Router) deleteItem(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	if !r.store.ItemExists(id) {
		respondError(w, http.StatusNotFound, "Item not found")
		return
	}
	removed, err := r.store.RemoveItem(req.Context(), id)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Cloud write failed: "+err.Error())
		return
	}
	if !removed {
		respondError(w, http.StatusConflict, "Cloud did not confirm the delete")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Item deleted successfully",
		"id":      id,
	})
}
