package blogservice

func FormatBlog(b Blog) BlogView {
	return BlogView{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
	}
}

func FormatBlogs(blogs []Blog) []BlogView {
	views := make([]BlogView, 0, len(blogs))
	for _, b := range blogs {
		views = append(views, FormatBlog(b))
	}

	return views
}
