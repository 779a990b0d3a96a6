package blogstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

const UncategorizedName = "Uncategorized"

var ErrPostNotFound = errors.New("blog post not found")

// StorePost is a post as the store keeps it. IDs are millisecond timestamps
// assigned at creation.
type StorePost struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
	PostDate string `json:"postDate"`
}

type document struct {
	Posts      []StorePost `json:"posts"`
	Categories []string    `json:"categories"`
}

// Store is an in-memory blog collection backed by a Storage. It must be
// hydrated before use; Hydrate is a no-op after the first call.
type Store struct {
	mu       sync.RWMutex
	storage  Storage
	posts    []StorePost
	cats     []string
	hydrated bool
	now      func() time.Time
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage, now: time.Now}
}

func defaultCategories() []string {
	return []string{"Painting Tips", "Company News", "Before & After", UncategorizedName}
}

func defaultPosts() []StorePost {
	return []StorePost{
		{
			ID:       1,
			Title:    "How Often Should You Repaint Your Home's Exterior?",
			Category: "Painting Tips",
			Excerpt:  "Climate, siding material, and paint quality all change the answer.",
			Content:  "Most homes need a fresh exterior coat every 5 to 10 years. Wood siding sits at the short end of that range, while fiber cement and brick can go longer. Watch for fading, chalking, and hairline cracks in the finish.",
			ImageURL: "/static/media/blog/exterior-repaint.jpg",
			PostDate: "2024-03-12",
		},
		{
			ID:       2,
			Title:    "Choosing a Finish: Flat, Eggshell, or Semi-Gloss?",
			Category: "Painting Tips",
			Excerpt:  "The right sheen depends on the room and how much traffic it sees.",
			Content:  "Flat hides surface flaws but scuffs easily, so save it for ceilings and low-traffic walls. Eggshell is the workhorse for living spaces. Semi-gloss stands up to scrubbing in kitchens, baths, and trim.",
			ImageURL: "/static/media/blog/finish-guide.jpg",
			PostDate: "2024-02-28",
		},
	}
}

// Hydrate loads the store from storage, seeding defaults when nothing has
// been persisted yet. Calling it again after a successful hydrate does
// nothing.
func (s *Store) Hydrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return nil
	}

	data, found, err := s.storage.Load()
	if err != nil {
		return fmt.Errorf("load blog store: %w", err)
	}

	if !found {
		s.posts = defaultPosts()
		s.cats = defaultCategories()
		s.hydrated = true
		return s.persistLocked()
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode blog store: %w", err)
	}

	s.posts = doc.Posts
	if s.posts == nil {
		s.posts = []StorePost{}
	}
	s.cats = doc.Categories
	if len(s.cats) == 0 {
		s.cats = defaultCategories()
	}
	s.hydrated = true
	return nil
}

func (s *Store) HasHydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrated
}

func (s *Store) persistLocked() error {
	doc := document{Posts: s.posts, Categories: s.cats}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode blog store: %w", err)
	}
	if err := s.storage.Save(data); err != nil {
		return fmt.Errorf("save blog store: %w", err)
	}
	return nil
}

// Posts returns all posts, newest first.
func (s *Store) Posts() []StorePost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]StorePost, len(s.posts))
	copy(out, s.posts)
	return out
}

func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.cats))
	copy(out, s.cats)
	return out
}

func (s *Store) GetPost(id int64) (StorePost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return StorePost{}, ErrPostNotFound
}

// AddPost assigns the new post a millisecond-timestamp ID, defaults the post
// date to today, cleans the content, and prepends it to the list.
func (s *Store) AddPost(post StorePost) (StorePost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post.ID = s.now().UnixMilli()
	if post.PostDate == "" {
		post.PostDate = s.now().Format("2006-01-02")
	}
	if post.Category == "" {
		post.Category = UncategorizedName
	}
	post.Content = CleanContent(post.Content)

	s.posts = append([]StorePost{post}, s.posts...)
	if err := s.persistLocked(); err != nil {
		return StorePost{}, err
	}
	return post, nil
}

func (s *Store) UpdatePost(post StorePost) (StorePost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.posts {
		if p.ID == post.ID {
			post.Content = CleanContent(post.Content)
			if post.PostDate == "" {
				post.PostDate = p.PostDate
			}
			s.posts[i] = post
			if err := s.persistLocked(); err != nil {
				return StorePost{}, err
			}
			return post, nil
		}
	}
	return StorePost{}, ErrPostNotFound
}

func (s *Store) DeletePost(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.posts {
		if p.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return s.persistLocked()
		}
	}
	return ErrPostNotFound
}

// AddCategory appends the category if it is not already present.
func (s *Store) AddCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.cats {
		if c == name {
			return nil
		}
	}
	s.cats = append(s.cats, name)
	return s.persistLocked()
}

// DeleteCategory removes the category and moves its posts to Uncategorized.
// The Uncategorized category itself cannot be removed.
func (s *Store) DeleteCategory(name string) error {
	if name == UncategorizedName {
		return errors.New("cannot delete the Uncategorized category")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cats[:0]
	for _, c := range s.cats {
		if c == name {
			continue
		}
		kept = append(kept, c)
	}
	s.cats = kept

	for i := range s.posts {
		if s.posts[i].Category == name {
			s.posts[i].Category = UncategorizedName
		}
	}
	return s.persistLocked()
}
