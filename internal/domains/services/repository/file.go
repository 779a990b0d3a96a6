package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"paintpro-backend/internal/domains/services"
	"paintpro-backend/internal/shared/apperror"
	"paintpro-backend/internal/shared/storejson"
)

// fileRepository keeps the whole services section in services.json.
type fileRepository struct {
	path string
}

func NewFileRepository(dataDir string) services.Repository {
	return &fileRepository{path: filepath.Join(dataDir, "services.json")}
}

type fileDoc struct {
	Heading    string          `json:"heading"`
	Subheading string          `json:"subheading"`
	Services   []services.Item `json:"services"`
}

func (r *fileRepository) load() (*fileDoc, bool, error) {
	var doc fileDoc
	found, err := storejson.Read(r.path, &doc)
	if err != nil {
		return nil, false, apperror.Persistence("failed to read services file", err)
	}
	return &doc, found, nil
}

func (r *fileRepository) save(doc *fileDoc) error {
	if err := storejson.Write(r.path, doc); err != nil {
		return apperror.Persistence("failed to write services file", err)
	}
	return nil
}

func (r *fileRepository) toSection(doc *fileDoc) *services.Section {
	createdAt := time.Now()
	if info, err := os.Stat(r.path); err == nil {
		createdAt = info.ModTime()
	}
	items := doc.Services
	if items == nil {
		items = []services.Item{}
	}
	return &services.Section{
		Heading:    doc.Heading,
		Subheading: doc.Subheading,
		Services:   items,
		CreatedAt:  createdAt,
	}
}

func nextID(items []services.Item) int64 {
	var max int64
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1
}

func (r *fileRepository) GetLatest(ctx context.Context) (*services.Section, error) {
	doc, found, err := r.load()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NotFound("no services content found")
	}
	return r.toSection(doc), nil
}

func (r *fileRepository) SaveVersion(ctx context.Context, heading, subheading string, items []services.ItemInput) (*services.Section, error) {
	doc := &fileDoc{Heading: heading, Subheading: subheading, Services: []services.Item{}}
	for i, item := range items {
		doc.Services = append(doc.Services, services.Item{
			ID:           int64(i + 1),
			Title:        item.Title,
			Description:  item.Description,
			ImageURL:     item.ImageURL,
			DisplayOrder: i,
		})
	}

	if err := r.save(doc); err != nil {
		return nil, err
	}
	return r.GetLatest(ctx)
}

func (r *fileRepository) AddItem(ctx context.Context, item services.ItemInput) (*services.Section, error) {
	doc, found, err := r.load()
	if err != nil {
		return nil, err
	}
	if !found {
		doc = &fileDoc{Heading: services.DefaultHeading}
	}

	doc.Services = append(doc.Services, services.Item{
		ID:           nextID(doc.Services),
		Title:        item.Title,
		Description:  item.Description,
		ImageURL:     item.ImageURL,
		DisplayOrder: len(doc.Services),
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
		return apperror.NotFound(fmt.Sprintf("service item %d not found", id))
	}

	kept := doc.Services[:0]
	removed := false
	for _, item := range doc.Services {
		if item.ID == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return apperror.NotFound(fmt.Sprintf("service item %d not found", id))
	}

	if len(kept) == 0 {
		if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
			return apperror.Persistence("failed to remove services file", err)
		}
		return nil
	}

	for i := range kept {
		kept[i].DisplayOrder = i
	}
	doc.Services = kept

	return r.save(doc)
}

func (r *fileRepository) Reorder(ctx context.Context, ids []int64) (*services.Section, error) {
	doc, found, err := r.load()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NotFound("no services content found")
	}

	position := make(map[int64]int, len(ids))
	for i, id := range ids {
		position[id] = i
	}

	for i := range doc.Services {
		if pos, ok := position[doc.Services[i].ID]; ok {
			doc.Services[i].DisplayOrder = pos
		}
	}

	sort.SliceStable(doc.Services, func(i, j int) bool {
		return doc.Services[i].DisplayOrder < doc.Services[j].DisplayOrder
	})

	if err := r.save(doc); err != nil {
		return nil, err
	}
	return r.GetLatest(ctx)
}
