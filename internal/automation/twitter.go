package automation

import "context"

// TwitterAuthResult is the outcome of a Twitter login.
type TwitterAuthResult struct {
	Success     bool   `json:"success"`
	ProfileName string `json:"profile_name"`
	Username    string `json:"username"`
	SessionID   string `json:"session_id"`
	Error       string `json:"error"`
}

// TwitterAuth logs in with username/password or an auth_token cookie.
func (c *Client) TwitterAuth(ctx context.Context, username, password, authToken string) (*TwitterAuthResult, error) {
	var result TwitterAuthResult
	err := c.post(ctx, "/twitter/auth", map[string]any{
		"username":   username,
		"password":   password,
		"auth_token": authToken,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// TwitterTimelineResult is a page of home timeline tweets.
type TwitterTimelineResult struct {
	Success      bool       `json:"success"`
	Tweets       []PostItem `json:"tweets"`
	FetchedCount int        `json:"fetched_count"`
	Error        string     `json:"error"`
}

// TwitterTimeline fetches the most recent tweets from the home timeline.
func (c *Client) TwitterTimeline(ctx context.Context, sessionID string, maxTweets int) (*TwitterTimelineResult, error) {
	var result TwitterTimelineResult
	err := c.post(ctx, "/twitter/timeline", map[string]any{
		"session_id": sessionID,
		"max_tweets": maxTweets,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// TwitterTest probes whether a session is still valid.
func (c *Client) TwitterTest(ctx context.Context, sessionID string) (*SessionTestResult, error) {
	var result SessionTestResult
	err := c.post(ctx, "/twitter/test", map[string]any{
		"session_id": sessionID,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// TwitterDisconnect tears down a session server-side. Best effort.
func (c *Client) TwitterDisconnect(ctx context.Context, sessionID string) error {
	var result struct {
		Success bool `json:"success"`
	}
	return c.post(ctx, "/twitter/disconnect", map[string]any{
		"session_id": sessionID,
	}, &result)
}
