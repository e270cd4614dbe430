package gh

import (
	"context"
	"fmt"

	"github.com/google/go-github/v63/github"
)

// Client is the minimal GitHub API surface the gate needs: resolving the
// requester from a pull request when no handle was supplied directly. The
// ownership core never talks to the network.
type Client interface {
	PRAuthor(prNumber int) (string, error)
}

type ghClient struct {
	ctx    context.Context
	owner  string
	repo   string
	client *github.Client
}

func NewClient(owner, repo, token string) Client {
	client := github.NewClient(nil).WithAuthToken(token)
	return &ghClient{
		ctx:    context.Background(),
		owner:  owner,
		repo:   repo,
		client: client,
	}
}

// PRAuthor returns the author of the pull request as an @handle.
func (gh *ghClient) PRAuthor(prNumber int) (string, error) {
	pull, res, err := gh.client.PullRequests.Get(gh.ctx, gh.owner, gh.repo, prNumber)
	if err != nil {
		return "", fmt.Errorf("fetching PR %d: %w", prNumber, err)
	}
	defer func() {
		_ = res.Body.Close()
	}()
	login := pull.User.GetLogin()
	if login == "" {
		return "", fmt.Errorf("PR %d has no author login", prNumber)
	}
	return "@" + login, nil
}
