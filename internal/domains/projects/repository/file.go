package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"paintpro-backend/internal/domains/projects"
	"paintpro-backend/internal/shared/apperror"
	"paintpro-backend/internal/shared/storejson"
)

// fileRepository keeps the whole projects section in projects.json.
type fileRepository struct {
	path string
}

func NewFileRepository(dataDir string) projects.Repository {
	return &fileRepository{path: filepath.Join(dataDir, "projects.json")}
}

type fileDoc struct {
	Heading     string          `json:"heading"`
	Description string          `json:"description"`
	Projects    []projects.Item `json:"projects"`
}

func (r *fileRepository) load() (*fileDoc, bool, error) {
	var doc fileDoc
	found, err := storejson.Read(r.path, &doc)
	if err != nil {
		return nil, false, apperror.Persistence("failed to read projects file", err)
	}
	return &doc, found, nil
}

func (r *fileRepository) save(doc *fileDoc) error {
	if err := storejson.Write(r.path, doc); err != nil {
		return apperror.Persistence("failed to write projects file", err)
	}
	return nil
}

func (r *fileRepository) toSection(doc *fileDoc) *projects.Section {
	createdAt := time.Now()
	if info, err := os.Stat(r.path); err == nil {
		createdAt = info.ModTime()
	}
	items := doc.Projects
	if items == nil {
		items = []projects.Item{}
	}
	return &projects.Section{
		Heading:     doc.Heading,
		Description: doc.Description,
		Projects:    items,
		CreatedAt:   createdAt,
	}
}

func nextID(items []projects.Item) int64 {
	var max int64
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1
}

func (r *fileRepository) GetLatest(ctx context.Context) (*projects.Section, error) {
	doc, found, err := r.load()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NotFound("no projects content found")
	}
	return r.toSection(doc), nil
}

func (r *fileRepository) SaveVersion(ctx context.Context, heading, description string, items []projects.ItemInput) (*projects.Section, error) {
	doc := &fileDoc{Heading: heading, Description: description, Projects: []projects.Item{}}
	for i, item := range items {
		doc.Projects = append(doc.Projects, projects.Item{
			ID:           int64(i + 1),
			Title:        item.Title,
			Location:     item.Location,
			ImageURL:     item.ImageURL,
			DisplayOrder: i,
		})
	}

	if err := r.save(doc); err != nil {
		return nil, err
	}
	return r.GetLatest(ctx)
}

func (r *fileRepository) AddItem(ctx context.Context, item projects.ItemInput) (*projects.Section, error) {
	doc, found, err := r.load()
	if err != nil {
		return nil, err
	}
	if !found {
		doc = &fileDoc{Heading: projects.DefaultHeading}
	}

	doc.Projects = append(doc.Projects, projects.Item{
		ID:           nextID(doc.Projects),
		Title:        item.Title,
		Location:     item.Location,
		ImageURL:     item.ImageURL,
		DisplayOrder: len(doc.Projects),
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
		return apperror.NotFound(fmt.Sprintf("project item %d not found", id))
	}

	kept := doc.Projects[:0]
	removed := false
	for _, item := range doc.Projects {
		if item.ID == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return apperror.NotFound(fmt.Sprintf("project item %d not found", id))
	}

	if len(kept) == 0 {
		if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
			return apperror.Persistence("failed to remove projects file", err)
		}
		return nil
	}

	for i := range kept {
		kept[i].DisplayOrder = i
	}
	doc.Projects = kept

	return r.save(doc)
}

func (r *fileRepository) Reorder(ctx context.Context, ids []int64) (*projects.Section, error) {
	doc, found, err := r.load()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NotFound("no projects content found")
	}

	position := make(map[int64]int, len(ids))
	for i, id := range ids {
		position[id] = i
	}

	for i := range doc.Projects {
		if pos, ok := position[doc.Projects[i].ID]; ok {
			doc.Projects[i].DisplayOrder = pos
		}
	}

	sort.SliceStable(doc.Projects, func(i, j int) bool {
		return doc.Projects[i].DisplayOrder < doc.Projects[j].DisplayOrder
	})

	if err := r.save(doc); err != nil {
		return nil, err
	}
	return r.GetLatest(ctx)
}
