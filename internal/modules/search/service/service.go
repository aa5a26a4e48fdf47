package service

import (
	"fmt"
	"html"
	"log"
	"strings"

	"anphu.vn/residencehub/internal/entity"
	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
)

// SearchService mirrors packages and feedback into Meilisearch for the
// building office's lookup tool. Index failures are logged, never fatal; the
// database stays the source of truth.
type SearchService interface {
	IndexPackage(pkg *entity.Package) error
	DeletePackage(id uint) error
	IndexFeedback(feedback *entity.Feedback) error
}

type searchService struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
}

func NewSearchService(client meilisearch.ServiceManager) SearchService {
	s := &searchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
	s.initIndexes()
	return s
}

func (s *searchService) initIndexes() {
	packageFilterable := []string{"locker_id", "status"}
	packageFilterableInterface := make([]any, len(packageFilterable))
	for i, v := range packageFilterable {
		packageFilterableInterface[i] = v
	}
	_, err := s.client.Index("packages").UpdateFilterableAttributes(&packageFilterableInterface)
	if err != nil {
		log.Printf("Failed to update packages filterable attributes: %v", err)
	}

	packageSortable := []string{"created_at"}
	_, err = s.client.Index("packages").UpdateSortableAttributes(&packageSortable)
	if err != nil {
		log.Printf("Failed to update packages sortable attributes: %v", err)
	}

	feedbackFilterable := []string{"user_id"}
	feedbackFilterableInterface := make([]any, len(feedbackFilterable))
	for i, v := range feedbackFilterable {
		feedbackFilterableInterface[i] = v
	}
	_, err = s.client.Index("feedback").UpdateFilterableAttributes(&feedbackFilterableInterface)
	if err != nil {
		log.Printf("Failed to update feedback filterable attributes: %v", err)
	}

	feedbackSortable := []string{"created_at"}
	_, err = s.client.Index("feedback").UpdateSortableAttributes(&feedbackSortable)
	if err != nil {
		log.Printf("Failed to update feedback sortable attributes: %v", err)
	}

	log.Println("Meilisearch indexes initialized")
}

type meiliPackageDoc struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	LockerID  uint   `json:"locker_id"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

type meiliFeedbackDoc struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	UserID    string `json:"user_id"`
	CreatedAt int64  `json:"created_at"`
}

// cleanContentForIndex strips rich-text markup before indexing.
func (s *searchService) cleanContentForIndex(content string) string {
	content = strings.ReplaceAll(content, "</p>", " ")
	content = strings.ReplaceAll(content, "<br>", " ")
	content = strings.ReplaceAll(content, "</div>", " ")

	sanitized := s.sanitizer.Sanitize(content)
	cleanText := html.UnescapeString(sanitized)
	cleanText = strings.Join(strings.Fields(cleanText), " ")

	return cleanText
}

func (s *searchService) IndexPackage(pkg *entity.Package) error {
	doc := meiliPackageDoc{
		ID:        fmt.Sprintf("%d", pkg.ID),
		Name:      pkg.Name,
		LockerID:  pkg.LockerID,
		Status:    string(pkg.Status),
		CreatedAt: pkg.CreatedAt.Unix(),
	}

	task, err := s.client.Index("packages").AddDocuments([]meiliPackageDoc{doc}, strPtr("id"))
	if err != nil {
		return err
	}
	log.Printf("Indexed package %d, task id: %d", pkg.ID, task.TaskUID)
	return nil
}

func (s *searchService) DeletePackage(id uint) error {
	task, err := s.client.Index("packages").DeleteDocument(fmt.Sprintf("%d", id))
	if err != nil {
		return err
	}
	log.Printf("Deleted package %d from index, task id: %d", id, task.TaskUID)
	return nil
}

func (s *searchService) IndexFeedback(feedback *entity.Feedback) error {
	doc := meiliFeedbackDoc{
		ID:        fmt.Sprintf("%d", feedback.ID),
		Subject:   feedback.Subject,
		Message:   s.cleanContentForIndex(feedback.Message),
		UserID:    feedback.UserID.String(),
		CreatedAt: feedback.CreatedAt.Unix(),
	}

	task, err := s.client.Index("feedback").AddDocuments([]meiliFeedbackDoc{doc}, strPtr("id"))
	if err != nil {
		return err
	}
	log.Printf("Indexed feedback %d, task id: %d", feedback.ID, task.TaskUID)
	return nil
}

func strPtr(s string) *string {
	return &s
}
