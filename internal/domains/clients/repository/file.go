package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"paintpro-backend/internal/domains/clients"
	"paintpro-backend/internal/shared/apperror"
	"paintpro-backend/internal/shared/storejson"
)

// fileRepository keeps the whole clients section in clients.json.
// Item ids are assigned max+1 within the file; whole-file read-modify-write,
// last writer wins.
type fileRepository struct {
	path string
}

func NewFileRepository(dataDir string) clients.Repository {
	return &fileRepository{path: filepath.Join(dataDir, "clients.json")}
}

type fileDoc struct {
	Heading string         `json:"heading"`
	Clients []clients.Item `json:"clients"`
}

func (r *fileRepository) load() (*fileDoc, bool, error) {
	var doc fileDoc
	found, err := storejson.Read(r.path, &doc)
	if err != nil {
		return nil, false, apperror.Persistence("failed to read clients file", err)
	}
	return &doc, found, nil
}

func (r *fileRepository) save(doc *fileDoc) error {
	if err := storejson.Write(r.path, doc); err != nil {
		return apperror.Persistence("failed to write clients file", err)
	}
	return nil
}

func (r *fileRepository) toSection(doc *fileDoc) *clients.Section {
	createdAt := time.Now()
	if info, err := os.Stat(r.path); err == nil {
		createdAt = info.ModTime()
	}
	items := doc.Clients
	if items == nil {
		items = []clients.Item{}
	}
	return &clients.Section{
		Heading:   doc.Heading,
		Clients:   items,
		CreatedAt: createdAt,
	}
}

func nextID(items []clients.Item) int64 {
	var max int64
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1
}

func (r *fileRepository) GetLatest(ctx context.Context) (*clients.Section, error) {
	doc, found, err := r.load()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NotFound("no clients content found")
	}
	return r.toSection(doc), nil
}

func (r *fileRepository) SaveVersion(ctx context.Context, heading string, items []clients.ItemInput) (*clients.Section, error) {
	doc := &fileDoc{Heading: heading, Clients: []clients.Item{}}
	for i, item := range items {
		doc.Clients = append(doc.Clients, clients.Item{
			ID:           int64(i + 1),
			Src:          item.Src,
			Alt:          item.Alt,
			DisplayOrder: i,
		})
	}

	if err := r.save(doc); err != nil {
		return nil, err
	}
	return r.GetLatest(ctx)
}

func (r *fileRepository) AddItem(ctx context.Context, item clients.ItemInput) (*clients.Section, error) {
	doc, found, err := r.load()
	if err != nil {
		return nil, err
	}
	if !found {
		doc = &fileDoc{Heading: clients.DefaultHeading}
	}

	doc.Clients = append(doc.Clients, clients.Item{
		ID:           nextID(doc.Clients),
		Src:          item.Src,
		Alt:          item.Alt,
		DisplayOrder: len(doc.Clients),
	})

	if err := r.save(doc); err != nil {
		return nil, err
	}
	return r.GetLatest(ctx)
}

func (r *fileRepository) DeleteItem(ctx context.Context, id int64) error {
	doc, found, err := r.load()
	if err != nil {
		return err
	}
	if !found {
		return apperror.NotFound(fmt.Sprintf("client item %d not found", id))
	}

	kept := doc.Clients[:0]
	removed := false
	for _, item := range doc.Clients {
		if item.ID == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return apperror.NotFound(fmt.Sprintf("client item %d not found", id))
	}

	// Empty section: remove the file entirely, matching the relational
	// backend's delete-parent behavior.
	if len(kept) == 0 {
		if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
			return apperror.Persistence("failed to remove clients file", err)
		}
		return nil
	}

	for i := range kept {
		kept[i].DisplayOrder = i
	}
	doc.Clients = kept

	return r.save(doc)
}

func (r *fileRepository) Reorder(ctx context.Context, ids []int64) (*clients.Section, error) {
	doc, found, err := r.load()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NotFound("no clients content found")
	}

	position := make(map[int64]int, len(ids))
	for i, id := range ids {
		position[id] = i
	}

	for i := range doc.Clients {
		if pos, ok := position[doc.Clients[i].ID]; ok {
			doc.Clients[i].DisplayOrder = pos
		}
	}

	// Re-sort by the resulting order so readers see items in display order.
	sort.SliceStable(doc.Clients, func(i, j int) bool {
		return doc.Clients[i].DisplayOrder < doc.Clients[j].DisplayOrder
	})

	if err := r.save(doc); err != nil {
		return nil, err
	}
	return r.GetLatest(ctx)
}
