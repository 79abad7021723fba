// Package stats reduces a list of blogs to summary statistics. Every function is
// pure and safe for concurrent use on independent inputs. Ties always resolve to
// the entry or author seen first in input order.
package stats

import "github.com/sushihentaime/bloglist/internal/blogservice"

type AuthorCount struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}

type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// Summary bundles every statistic. Nil fields mean the input was empty.
type Summary struct {
	TotalLikes   int                   `json:"totalLikes"`
	FavoriteBlog *blogservice.BlogView `json:"favoriteBlog"`
	MostBlogs    *AuthorCount          `json:"mostBlogs"`
	MostLikes    *AuthorLikes          `json:"mostLikes"`
}

// Dummy always returns 1.
func Dummy(blogs []blogservice.Blog) int {
	return 1
}

func TotalLikes(blogs []blogservice.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}

	return total
}

// FavoriteBlog returns the blog with the most likes. ok is false for an empty input.
func FavoriteBlog(blogs []blogservice.Blog) (fav blogservice.Blog, ok bool) {
	if len(blogs) == 0 {
		return blogservice.Blog{}, false
	}

	fav = blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > fav.Likes {
			fav = b
		}
	}

	return fav, true
}

// MostBlogs returns the author with the most blogs. Authors are compared verbatim.
func MostBlogs(blogs []blogservice.Blog) (AuthorCount, bool) {
	author, count, ok := maxByAuthor(blogs, func(blogservice.Blog) int { return 1 })
	if !ok {
		return AuthorCount{}, false
	}

	return AuthorCount{Author: author, Count: count}, true
}

// MostLikes returns the author whose blogs have the most likes in total.
func MostLikes(blogs []blogservice.Blog) (AuthorLikes, bool) {
	author, likes, ok := maxByAuthor(blogs, func(b blogservice.Blog) int { return b.Likes })
	if !ok {
		return AuthorLikes{}, false
	}

	return AuthorLikes{Author: author, Likes: likes}, true
}

func Summarize(blogs []blogservice.Blog) Summary {
	s := Summary{TotalLikes: TotalLikes(blogs)}

	if fav, ok := FavoriteBlog(blogs); ok {
		view := blogservice.FormatBlog(fav)
		s.FavoriteBlog = &view
	}
	if mb, ok := MostBlogs(blogs); ok {
		s.MostBlogs = &mb
	}
	if ml, ok := MostLikes(blogs); ok {
		s.MostLikes = &ml
	}

	return s
}

// maxByAuthor sums weight per author and returns the author with the largest
// total. The tally keeps authors in first-seen order so map iteration order
// never decides a tie.
func maxByAuthor(blogs []blogservice.Blog, weight func(blogservice.Blog) int) (string, int, bool) {
	if len(blogs) == 0 {
		return "", 0, false
	}

	var authors []string
	totals := make(map[string]int)
	for _, b := range blogs {
		if _, seen := totals[b.Author]; !seen {
			authors = append(authors, b.Author)
		}
		totals[b.Author] += weight(b)
	}

	best := authors[0]
	for _, a := range authors[1:] {
		if totals[a] > totals[best] {
			best = a
		}
	}

	return best, totals[best], true
}
