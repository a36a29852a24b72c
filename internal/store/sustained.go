package store

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/daykeep/daykeep/internal/model"
)

// SustainedLists returns every sustained checklist, keyed by list id.
//
// The canonical key is "sustainedLists"; when it is absent the legacy
// "sustainedTasks" key is read instead. This is the single versioned-read
// shim for stores written by older revisions.
func (s *Store) SustainedLists() map[string]model.SustainedList {
	lists := map[string]model.SustainedList{}
	if !s.get(KeySustainedLists, &lists) {
		s.get(KeySustainedLegacy, &lists)
	}
	return lists
}

// SustainedItems flattens every sustained list into one item slice.
func (s *Store) SustainedItems() []model.SustainedItem {
	var items []model.SustainedItem
	for _, list := range s.SustainedLists() {
		items = append(items, list.Items...)
	}
	return items
}

// SustainedListIDs returns list ids sorted by title for stable display.
func (s *Store) SustainedListIDs() []string {
	lists := s.SustainedLists()
	ids := make([]string, 0, len(lists))
	for id := range lists {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if lists[ids[i]].Title != lists[ids[j]].Title {
			return lists[ids[i]].Title < lists[ids[j]].Title
		}
		return ids[i] < ids[j]
	})
	return ids
}

func (s *Store) saveSustainedLists(lists map[string]model.SustainedList) error {
	return s.set(KeySustainedLists, lists)
}

// AddSustainedList creates an empty sustained checklist.
func (s *Store) AddSustainedList(title string) (string, error) {
	lists := s.SustainedLists()
	id := "list-" + uuid.NewString()
	lists[id] = model.SustainedList{Title: title, Items: []model.SustainedItem{}}
	if err := s.saveSustainedLists(lists); err != nil {
		return "", err
	}
	return id, nil
}

// DeleteSustainedList removes a checklist and all its items.
func (s *Store) DeleteSustainedList(listID string) error {
	lists := s.SustainedLists()
	if _, ok := lists[listID]; !ok {
		return fmt.Errorf("sustained list %s not found", listID)
	}
	delete(lists, listID)
	return s.saveSustainedLists(lists)
}

// AddSustainedItem appends an item to a checklist.
func (s *Store) AddSustainedItem(listID, text string) (model.SustainedItem, error) {
	lists := s.SustainedLists()
	list, ok := lists[listID]
	if !ok {
		return model.SustainedItem{}, fmt.Errorf("sustained list %s not found", listID)
	}
	item := model.SustainedItem{ID: "item-" + uuid.NewString(), Text: text}
	list.Items = append(list.Items, item)
	lists[listID] = list
	if err := s.saveSustainedLists(lists); err != nil {
		return model.SustainedItem{}, err
	}
	return item, nil
}

// SetSustainedItemCompleted toggles an item. Completing stamps today's day
// key as the completion date (the attribute analytics consumes); un-completing
// clears it.
func (s *Store) SetSustainedItemCompleted(listID, itemID string, completed bool) error {
	lists := s.SustainedLists()
	list, ok := lists[listID]
	if !ok {
		return fmt.Errorf("sustained list %s not found", listID)
	}
	for i := range list.Items {
		if list.Items[i].ID != itemID {
			continue
		}
		list.Items[i].Completed = completed
		if completed {
			list.Items[i].CompletionDate = model.DayKey(s.now())
		} else {
			list.Items[i].CompletionDate = ""
		}
		lists[listID] = list
		return s.saveSustainedLists(lists)
	}
	return fmt.Errorf("item %s not found in list %s", itemID, listID)
}

// DeleteSustainedItem removes an item from a checklist.
func (s *Store) DeleteSustainedItem(listID, itemID string) error {
	lists := s.SustainedLists()
	list, ok := lists[listID]
	if !ok {
		return fmt.Errorf("sustained list %s not found", listID)
	}
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			list.Items = append(list.Items[:i:i], list.Items[i+1:]...)
			lists[listID] = list
			return s.saveSustainedLists(lists)
		}
	}
	return fmt.Errorf("item %s not found in list %s", itemID, listID)
}
