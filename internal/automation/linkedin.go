package automation

import "context"

// LinkedInAuthResult is the outcome of a LinkedIn session login.
type LinkedInAuthResult struct {
	Success     bool   `json:"success"`
	ProfileName string `json:"profile_name"`
	SessionID   string `json:"session_id"`
	Error       string `json:"error"`
}

// LinkedInAuth logs in with either email/password or a li_at cookie and
// returns a reusable session id.
func (c *Client) LinkedInAuth(ctx context.Context, email, password, liAtCookie string) (*LinkedInAuthResult, error) {
	var result LinkedInAuthResult
	err := c.post(ctx, "/linkedin/auth", map[string]any{
		"email":        email,
		"password":     password,
		"li_at_cookie": liAtCookie,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// PostItem is one LinkedIn post returned by the service.
type PostItem struct {
	ExternalID  string `json:"external_id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Author      string `json:"author"`
	PublishedAt string `json:"published_at"`
}

// LinkedInPostsResult is a page of fetched posts.
type LinkedInPostsResult struct {
	Success      bool       `json:"success"`
	Posts        []PostItem `json:"posts"`
	FetchedCount int        `json:"fetched_count"`
	Error        string     `json:"error"`
}

// LinkedInProfilePosts fetches recent posts of one public profile.
func (c *Client) LinkedInProfilePosts(ctx context.Context, sessionID, publicID string, maxPosts int) (*LinkedInPostsResult, error) {
	var result LinkedInPostsResult
	err := c.post(ctx, "/linkedin/profile-posts", map[string]any{
		"session_id": sessionID,
		"public_id":  publicID,
		"max_posts":  maxPosts,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ProfileInfo describes one profile found by search.
type ProfileInfo struct {
	PublicID   string `json:"public_id"`
	Name       string `json:"name"`
	Headline   string `json:"headline"`
	ProfileURL string `json:"profile_url"`
	PhotoURL   string `json:"photo_url"`
}

// LinkedInSearchResult is a profile search response.
type LinkedInSearchResult struct {
	Success  bool          `json:"success"`
	Profiles []ProfileInfo `json:"profiles"`
	Error    string        `json:"error"`
}

// LinkedInSearchProfiles finds public profiles by keyword, for the source
// configuration flow.
func (c *Client) LinkedInSearchProfiles(ctx context.Context, sessionID, keywords string, limit int) (*LinkedInSearchResult, error) {
	if limit <= 0 {
		limit = 10
	}
	var result LinkedInSearchResult
	err := c.post(ctx, "/linkedin/search-profiles", map[string]any{
		"session_id": sessionID,
		"keywords":   keywords,
		"limit":      limit,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// SessionTestResult is a lightweight "am I still logged in" probe response.
type SessionTestResult struct {
	Success     bool   `json:"success"`
	ProfileName string `json:"profile_name"`
	Username    string `json:"username"`
	Error       string `json:"error"`
}

// LinkedInTest probes whether a session is still valid.
func (c *Client) LinkedInTest(ctx context.Context, sessionID string) (*SessionTestResult, error) {
	var result SessionTestResult
	err := c.post(ctx, "/linkedin/test", map[string]any{
		"session_id": sessionID,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// LinkedInDisconnect tears down a session server-side. Best effort.
func (c *Client) LinkedInDisconnect(ctx context.Context, sessionID string) error {
	var result struct {
		Success bool `json:"success"`
	}
	return c.post(ctx, "/linkedin/disconnect", map[string]any{
		"session_id": sessionID,
	}, &result)
}
