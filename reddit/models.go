package reddit

// Post is one entry of a listing.
type Post struct {
	ID        string
	Name      string // fullname, e.g. "t3_abc123"
	Title     string
	Author    string
	Stickied  bool
	Permalink string
}

// Submission is what the forum returns for a newly created post.
type Submission struct {
	ID   string
	Name string
	URL  string
}

type apiPost struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Stickied  bool   `json:"stickied"`
	Permalink string `json:"permalink"`
}

func (p apiPost) toPost() Post {
	return Post{
		ID:        p.ID,
		Name:      p.Name,
		Title:     p.Title,
		Author:    p.Author,
		Stickied:  p.Stickied,
		Permalink: p.Permalink,
	}
}

type listingResp struct {
	Kind string `json:"kind"`
	Data struct {
		After    string `json:"after"`
		Children []struct {
			Kind string  `json:"kind"`
			Data apiPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type submitResp struct {
	JSON struct {
		Errors [][]any `json:"errors"`
		Data   struct {
			ID   string `json:"id"`
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"data"`
	} `json:"json"`
}
