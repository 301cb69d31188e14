// Package presence announces what the player is doing to an external
// social-presence service (Discord rich presence) from a background
// goroutine, so the frame loop never waits on the network.
package presence

import (
	"time"

	"github.com/hugolgst/rich-go/client"
)

// AppID identifies clangen to the Discord presence service.
const AppID = "1076277970060185701"

// Activity is a presence status line.
type Activity struct {
	Details string
	State   string
	Start   time.Time
}

// Client is a presence backend. Implementations may block and may fail;
// the Reporter calls them only from its own goroutine.
type Client interface {
	Login() error
	SetActivity(a Activity) error
	Logout()
}

// DiscordClient talks to a local Discord client over its IPC socket.
type DiscordClient struct {
	AppID string
}

// NewDiscordClient returns a client for the clangen application id.
func NewDiscordClient() *DiscordClient {
	return &DiscordClient{AppID: AppID}
}

func (d *DiscordClient) Login() error {
	return client.Login(d.AppID)
}

func (d *DiscordClient) SetActivity(a Activity) error {
	act := client.Activity{
		Details:    a.Details,
		State:      a.State,
		LargeImage: "clangen",
		LargeText:  "Playing clangen",
	}
	if !a.Start.IsZero() {
		start := a.Start
		act.Timestamps = &client.Timestamps{Start: &start}
	}
	return client.SetActivity(act)
}

func (d *DiscordClient) Logout() {
	client.Logout()
}

// NopClient discards everything. Used when presence is disabled and for
// SSH sessions, which have no local Discord client.
type NopClient struct{}

func (NopClient) Login() error               { return nil }
func (NopClient) SetActivity(Activity) error { return nil }
func (NopClient) Logout()                    {}
