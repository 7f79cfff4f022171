// Package supabase implements the data access gateway and photo store on
// top of the hosted Supabase collaborator (PostgREST tables plus object
// storage with public-URL retrieval).
package supabase

import (
	"fmt"

	supa "github.com/supabase-community/supabase-go"
)

// NewClient connects to the hosted store. The client is created once at
// process start and injected into the gateway and photo store; nothing else
// in the application touches the collaborator directly.
func NewClient(url, anonKey string) (*supa.Client, error) {
	client, err := supa.NewClient(url, anonKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	return client, nil
}
