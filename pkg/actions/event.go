package actions

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Event is the subset of the webhook payload this action cares about
type Event struct {
	PullRequest *PullRequest `json:"pull_request,omitempty"`
}

// PullRequest from the webhook payload
type PullRequest struct {
	Head BranchRef `json:"head"`
}

// BranchRef is one side of a pull request
type BranchRef struct {
	Ref  string     `json:"ref"`
	Repo Repository `json:"repo"`
}

// Repository as described in webhook payloads
type Repository struct {
	FullName string `json:"full_name"`
}

// decode the generic payload into the typed fields
func (e *Event) decode(payload map[string]interface{}) error {
	if len(payload) == 0 {
		return nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, e)
}
