package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mutukulaw/internal/db"
	"gorm.io/gorm"
)

var (
	ErrBlogPostNotFound     = errors.New("blog post not found")
	ErrBlogPostInvalidInput = errors.New("blog post title and content are required")
)

// BlogPostService handles blog post CRUD and slug management.
type BlogPostService struct {
	db *gorm.DB
}

// BlogPostInput represents the editable fields of a blog post. The slug is
// never accepted from callers; it is always derived from the title.
type BlogPostInput struct {
	Title     string
	Content   string
	Summary   string
	ImageURL  string
	Published bool
}

// NewBlogPostService creates a BlogPostService instance.
func NewBlogPostService(gdb *gorm.DB) *BlogPostService {
	return &BlogPostService{db: gdb}
}

// Slugify derives a URL-safe slug from a title: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens stripped. Titles with no usable characters become "post".
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastHyphen := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "post"
	}
	return slug
}

// ListAll returns every post, drafts included, newest first. Admin-only path.
func (s *BlogPostService) ListAll() ([]db.BlogPost, error) {
	var posts []db.BlogPost
	if err := s.db.Order("created_at DESC, id DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	return posts, nil
}

// ListPublished returns published posts, newest first.
func (s *BlogPostService) ListPublished() ([]db.BlogPost, error) {
	var posts []db.BlogPost
	if err := s.db.Where("published = ?", true).
		Order("created_at DESC, id DESC").
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list published blog posts: %w", err)
	}
	return posts, nil
}

// Get fetches a post by id regardless of publication state. Admin-only path.
func (s *BlogPostService) Get(id uint) (*db.BlogPost, error) {
	var post db.BlogPost
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("get blog post: %w", err)
	}
	return &post, nil
}

// GetPublishedBySlug fetches a published post by slug. Drafts are invisible
// here, matching the public site.
func (s *BlogPostService) GetPublishedBySlug(slug string) (*db.BlogPost, error) {
	var post db.BlogPost
	if err := s.db.Where("slug = ? AND published = ?", strings.TrimSpace(slug), true).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("get blog post by slug: %w", err)
	}
	return &post, nil
}

// Create inserts a new post with a slug derived from the title. Identical
// titles get deterministic numeric suffixes so slugs stay unique.
func (s *BlogPostService) Create(input BlogPostInput) (*db.BlogPost, error) {
	if err := validateBlogPostInput(input); err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(Slugify(input.Title), 0)
	if err != nil {
		return nil, err
	}

	post := db.BlogPost{
		Title:     strings.TrimSpace(input.Title),
		Slug:      slug,
		Content:   input.Content,
		Summary:   strings.TrimSpace(input.Summary),
		ImageURL:  strings.TrimSpace(input.ImageURL),
		Published: input.Published,
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, fmt.Errorf("create blog post: %w", err)
	}
	return &post, nil
}

// Update modifies an existing post, re-deriving the slug whenever the title
// changes.
func (s *BlogPostService) Update(id uint, input BlogPostInput) (*db.BlogPost, error) {
	if err := validateBlogPostInput(input); err != nil {
		return nil, err
	}

	var post db.BlogPost
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("update blog post: %w", err)
	}

	title := strings.TrimSpace(input.Title)
	if title != post.Title {
		slug, err := s.uniqueSlug(Slugify(title), post.ID)
		if err != nil {
			return nil, err
		}
		post.Slug = slug
	}

	post.Title = title
	post.Content = input.Content
	post.Summary = strings.TrimSpace(input.Summary)
	post.ImageURL = strings.TrimSpace(input.ImageURL)
	post.Published = input.Published

	if err := s.db.Save(&post).Error; err != nil {
		return nil, fmt.Errorf("update blog post: %w", err)
	}
	return &post, nil
}

// Delete removes a post by id.
func (s *BlogPostService) Delete(id uint) error {
	var post db.BlogPost
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBlogPostNotFound
		}
		return fmt.Errorf("delete blog post: %w", err)
	}
	return s.db.Delete(&post).Error
}

func validateBlogPostInput(input BlogPostInput) error {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return ErrBlogPostInvalidInput
	}
	return nil
}

// uniqueSlug returns base unchanged when no other post claims it, otherwise
// the first free base-2, base-3, ... candidate. excludeID skips the post
// being updated so an unchanged title keeps its slug. The check is unscoped
// because the unique index on slug still covers soft-deleted rows.
func (s *BlogPostService) uniqueSlug(base string, excludeID uint) (string, error) {
	candidate := base
	for i := 2; ; i++ {
		var count int64
		query := s.db.Unscoped().Model(&db.BlogPost{}).Where("slug = ?", candidate)
		if excludeID != 0 {
			query = query.Where("id <> ?", excludeID)
		}
		if err := query.Count(&count).Error; err != nil {
			return "", fmt.Errorf("check slug uniqueness: %w", err)
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
