package blogservice

import (
	"math"

	"github.com/google/uuid"
	"github.com/sushihentaime/bloglist/internal/common"
)

func validateTitle(v *common.Validator, title string) {
	v.Check(title != "", "title", "title missing")
}

func validateLikes(v *common.Validator, likes int) {
	v.Check(likes >= 0, "likes", "likes must be non-negative")
	v.Check(likes <= math.MaxInt32, "likes", "likes too large")
}

func validateOwner(v *common.Validator, userID string) {
	v.Check(validID(userID), "userId", "malformatted userId")
}

// validID accepts only the canonical 36 character form, the one postgres parses.
func validID(id string) bool {
	return len(id) == 36 && uuid.Validate(id) == nil
}

// normalize validates req and builds the complete record to persist. Omitted
// optional fields get their defaults, never the values of a previous record.
func normalize(req *BlogRequest) (Blog, error) {
	b := Blog{
		Title:  sanitizeText(req.Title),
		Author: DefaultAuthor,
		URL:    DefaultURL,
	}

	if req.Author != nil {
		if author := sanitizeText(*req.Author); author != "" {
			b.Author = author
		}
	}
	if req.URL != nil {
		b.URL = *req.URL
	}
	if req.Likes != nil {
		b.Likes = *req.Likes
	}

	v := common.NewValidator()
	validateTitle(v, b.Title)
	validateLikes(v, b.Likes)
	if req.UserID != nil {
		validateOwner(v, *req.UserID)
	}
	if !v.Valid() {
		return Blog{}, v.ValidationError()
	}

	return b, nil
}
