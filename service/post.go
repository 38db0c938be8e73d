package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ncobase/blogpost/data/repository"
	"github.com/ncobase/blogpost/logging/logger"
	"github.com/ncobase/blogpost/structs"
)

// ListLimit caps the number of posts returned by List.
const ListLimit = 10

// requiredFields are checked for presence in this order.
var requiredFields = []string{"title", "content", "author"}

// Fields is a request body decoded one level deep.
type Fields map[string]json.RawMessage

// DecodeFields decodes a request body into its top-level keys. An empty body
// decodes to no fields. Anything other than a JSON object is ErrMalformedBody.
func DecodeFields(body []byte) (Fields, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return Fields{}, nil
	}
	if body[0] != '{' {
		return nil, ErrMalformedBody
	}

	fields := Fields{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, ErrMalformedBody
	}
	return fields, nil
}

// BlogPostService handles blog post business logic.
type BlogPostService struct {
	repo   repository.BlogPostRepository
	logger *logger.Logger
}

// NewBlogPostService creates a new blog post service.
func NewBlogPostService(repo repository.BlogPostRepository, logger *logger.Logger) *BlogPostService {
	return &BlogPostService{
		repo:   repo,
		logger: logger,
	}
}

// List returns the first page of posts.
func (s *BlogPostService) List(ctx context.Context) ([]*structs.BlogPost, error) {
	return s.repo.List(ctx, ListLimit)
}

// Get returns a post by id.
func (s *BlogPostService) Get(ctx context.Context, id string) (*structs.BlogPost, error) {
	return s.repo.FindByID(ctx, id)
}

// Create checks that title, content and author are present, then stores a
// new post built from those keys only.
func (s *BlogPostService) Create(ctx context.Context, fields Fields) (*structs.BlogPost, error) {
	for _, field := range requiredFields {
		if _, ok := fields[field]; !ok {
			err := &MissingFieldError{Field: field}
			s.logger.Warn(ctx, "invalid request", "error", err)
			return nil, err
		}
	}

	post := &structs.BlogPost{}
	if err := decodeString(fields, "title", &post.Title); err != nil {
		return nil, err
	}
	if err := decodeString(fields, "content", &post.Content); err != nil {
		return nil, err
	}
	if err := decodeField(fields, "author", &post.Author); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, post)
}

// Update applies the present title, content and author keys to the post
// named by pathID. The body id must equal pathID.
func (s *BlogPostService) Update(ctx context.Context, pathID string, fields Fields) error {
	bodyID, ok := bodyIDString(fields["id"])
	if pathID == "" || !ok || bodyID != pathID {
		err := &IDMismatchError{PathID: pathID, BodyID: renderBodyID(fields["id"])}
		s.logger.Warn(ctx, "invalid request", "error", err)
		return err
	}

	update, err := updateFromFields(fields)
	if err != nil {
		return err
	}

	return s.repo.Update(ctx, pathID, update)
}

// Delete removes a post by id.
func (s *BlogPostService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func updateFromFields(fields Fields) (*structs.UpdateBlogPost, error) {
	update := &structs.UpdateBlogPost{}
	for _, field := range requiredFields {
		raw, ok := fields[field]
		if !ok {
			continue
		}
		if isNull(raw) {
			update.Null = append(update.Null, field)
			continue
		}

		var err error
		switch field {
		case "title":
			update.Title = new(string)
			err = decodeString(fields, field, update.Title)
		case "content":
			update.Content = new(string)
			err = decodeString(fields, field, update.Content)
		case "author":
			update.Author = &structs.Author{}
			err = decodeField(fields, field, update.Author)
		}
		if err != nil {
			return nil, err
		}
	}
	return update, nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

func decodeField(fields Fields, name string, dst any) error {
	if err := json.Unmarshal(fields[name], dst); err != nil {
		return &CastError{Field: name, Err: err}
	}
	return nil
}

// decodeString stores a JSON scalar as a string: numbers and booleans take
// their string form and null becomes empty. Objects and arrays do not cast.
func decodeString(fields Fields, name string, dst *string) error {
	raw := bytes.TrimSpace(fields[name])
	if len(raw) == 0 {
		return &CastError{Field: name, Err: fmt.Errorf("empty value")}
	}

	switch raw[0] {
	case '"':
		return decodeField(fields, name, dst)
	case '{', '[':
		return &CastError{Field: name, Err: fmt.Errorf("cannot cast %s to string", raw)}
	case 'n':
		*dst = ""
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return &CastError{Field: name, Err: err}
		}
		*dst = strconv.FormatBool(b)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return &CastError{Field: name, Err: err}
	}
	f, err := n.Float64()
	if err != nil {
		return &CastError{Field: name, Err: err}
	}
	*dst = formatNumber(f)
	return nil
}

// formatNumber renders f the way a JavaScript number converts to a string:
// plain decimals between 1e-6 and 1e21, shortest exponent form outside.
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + exp
}

// bodyIDString returns the body id when it is a JSON string.
func bodyIDString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		return "", false
	}
	return id, true
}

// renderBodyID formats the body id for the mismatch message: strings
// unquoted, other JSON values as written, and "undefined" when absent.
func renderBodyID(raw json.RawMessage) string {
	if id, ok := bodyIDString(raw); ok {
		return id
	}
	if len(raw) == 0 {
		return "undefined"
	}
	return string(raw)
}
