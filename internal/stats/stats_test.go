package stats

import (
	"encoding/json"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sushihentaime/bloglist/internal/blogservice"
)

var listWithOneBlog = []blogservice.Blog{
	{ID: "5a422aa71b54a676234d17f8", Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", Likes: 5},
}

var blogs = []blogservice.Blog{
	{ID: "5a422a851b54a676234d17f7", Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7},
	{ID: "5a422aa71b54a676234d17f8", Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", Likes: 5},
	{ID: "5a422b3a1b54a676234d17f9", Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", URL: "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html", Likes: 12},
	{ID: "5a422b891b54a676234d17fa", Title: "First class tests", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/05/05/TestDefinitions.htmll", Likes: 10},
	{ID: "5a422ba71b54a676234d17fb", Title: "TDD harms architecture", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/03/03/TDD-Harms-Architecture.html", Likes: 0},
	{ID: "5a422bc61b54a676234d17fc", Title: "Type wars", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html", Likes: 2},
}

func TestDummy(t *testing.T) {
	assert.Equal(t, 1, Dummy(nil))
	assert.Equal(t, 1, Dummy(blogs))
}

func TestTotalLikes(t *testing.T) {
	testCases := []struct {
		name  string
		blogs []blogservice.Blog
		want  int
	}{
		{name: "empty list", blogs: nil, want: 0},
		{name: "one blog", blogs: listWithOneBlog, want: 5},
		{name: "bigger list", blogs: blogs, want: 36},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TotalLikes(tc.blogs))
		})
	}
}

func TestTotalLikesRandomized(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		n := r.Intn(50) + 1
		list := make([]blogservice.Blog, n)
		want := 0
		for j := range list {
			list[j].Likes = r.Intn(1000)
			want += list[j].Likes
		}

		require.Equal(t, want, TotalLikes(list), "iteration %d", i)
	}
}

func TestFavoriteBlog(t *testing.T) {
	testCases := []struct {
		name   string
		blogs  []blogservice.Blog
		wantOK bool
		wantID string
	}{
		{name: "empty list", blogs: nil, wantOK: false},
		{name: "one blog", blogs: listWithOneBlog, wantOK: true, wantID: "5a422aa71b54a676234d17f8"},
		{name: "bigger list", blogs: blogs, wantOK: true, wantID: "5a422b3a1b54a676234d17f9"},
		{
			name:   "tie keeps the first",
			blogs:  []blogservice.Blog{{ID: "A", Likes: 5}, {ID: "B", Likes: 5}},
			wantOK: true,
			wantID: "A",
		},
		{
			name:   "all zero",
			blogs:  []blogservice.Blog{{ID: "A"}, {ID: "B"}, {ID: "C"}},
			wantOK: true,
			wantID: "A",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fav, ok := FavoriteBlog(tc.blogs)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantID, fav.ID)
			} else {
				assert.Equal(t, blogservice.Blog{}, fav)
			}
		})
	}
}

func TestMostBlogs(t *testing.T) {
	testCases := []struct {
		name   string
		blogs  []blogservice.Blog
		want   AuthorCount
		wantOK bool
	}{
		{name: "empty list", blogs: nil},
		{name: "one blog", blogs: listWithOneBlog, want: AuthorCount{Author: "Edsger W. Dijkstra", Count: 1}, wantOK: true},
		{name: "bigger list", blogs: blogs, want: AuthorCount{Author: "Robert C. Martin", Count: 3}, wantOK: true},
		{
			name:   "interleaved authors",
			blogs:  []blogservice.Blog{{Author: "X"}, {Author: "Y"}, {Author: "X"}},
			want:   AuthorCount{Author: "X", Count: 2},
			wantOK: true,
		},
		{
			name:   "tie keeps the first seen author",
			blogs:  []blogservice.Blog{{Author: "Y"}, {Author: "X"}, {Author: "X"}, {Author: "Y"}},
			want:   AuthorCount{Author: "Y", Count: 2},
			wantOK: true,
		},
		{
			name:   "no normalization",
			blogs:  []blogservice.Blog{{Author: "x"}, {Author: "X "}, {Author: "X"}, {Author: "X"}},
			want:   AuthorCount{Author: "X", Count: 2},
			wantOK: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := MostBlogs(tc.blogs)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMostLikes(t *testing.T) {
	testCases := []struct {
		name   string
		blogs  []blogservice.Blog
		want   AuthorLikes
		wantOK bool
	}{
		{name: "empty list", blogs: nil},
		{name: "one blog", blogs: listWithOneBlog, want: AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 5}, wantOK: true},
		{name: "bigger list", blogs: blogs, want: AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 17}, wantOK: true},
		{
			name:   "tie keeps the first seen author",
			blogs:  []blogservice.Blog{{Author: "B", Likes: 3}, {Author: "A", Likes: 1}, {Author: "A", Likes: 2}},
			want:   AuthorLikes{Author: "B", Likes: 3},
			wantOK: true,
		},
		{
			name:   "zero likes",
			blogs:  []blogservice.Blog{{Author: "B"}, {Author: "A"}},
			want:   AuthorLikes{Author: "B", Likes: 0},
			wantOK: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := MostLikes(tc.blogs)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTieBreakIsStable(t *testing.T) {
	list := []blogservice.Blog{}
	for _, a := range []string{"k", "c", "x", "a", "q", "m", "b", "z"} {
		list = append(list, blogservice.Blog{Author: a, Likes: 4})
	}

	// map iteration order varies between runs, the result must not
	for i := 0; i < 100; i++ {
		got, _ := MostBlogs(list)
		require.Equal(t, "k", got.Author)
		gotLikes, _ := MostLikes(list)
		require.Equal(t, "k", gotLikes.Author)
	}
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := Summarize(blogs)
			assert.Equal(t, 36, s.TotalLikes)
		}()
	}
	wg.Wait()
}

func TestSummarize(t *testing.T) {
	s := Summarize(blogs)
	assert.Equal(t, 36, s.TotalLikes)
	require.NotNil(t, s.FavoriteBlog)
	assert.Equal(t, "Canonical string reduction", s.FavoriteBlog.Title)
	assert.Equal(t, &AuthorCount{Author: "Robert C. Martin", Count: 3}, s.MostBlogs)
	assert.Equal(t, &AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 17}, s.MostLikes)

	body, err := json.Marshal(Summarize(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalLikes":0,"favoriteBlog":null,"mostBlogs":null,"mostLikes":null}`, string(body))
}
