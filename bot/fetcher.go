package bot

import "context"

// PopularQuestions reads the hot listing of subreddit and returns the titles in ranking
// order, without the first raw entry (the sticky). An empty or single-entry listing
// yields an empty, non-nil slice.
func PopularQuestions(ctx context.Context, r ListingReader, subreddit string) ([]string, error) {
	posts, err := r.Hot(ctx, subreddit, HotLimit)
	if err != nil {
		return nil, err
	}
	if len(posts) <= 1 {
		return []string{}, nil
	}

	posts = posts[1:]
	titles := make([]string, 0, len(posts))
	for _, p := range posts {
		titles = append(titles, p.Title)
	}
	return titles, nil
}
