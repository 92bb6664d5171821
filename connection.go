package eventjournal

import (
	"context"
	"sync"
)

// Dialer opens a Client against the backing store. Credentials and transport
// settings are bound at dial time.
type Dialer func(ctx context.Context) (Client, error)

// Connection is the single shared handle to the backing store. It dials
// lazily on first use, hands the same Client to every operation, and is torn
// down once at process shutdown. It is the only process-wide state in the
// adapter.
type Connection struct {
	dial Dialer

	mux    sync.Mutex
	client Client
}

// Connect wraps a Dialer in a lazily opened Connection.
func Connect(dial Dialer) *Connection {
	return &Connection{dial: dial}
}

// ConnectClient wraps an already opened Client, typically an in-process
// store in tests.
func ConnectClient(client Client) *Connection {
	return &Connection{client: client}
}

// Get returns the shared Client, dialing on first use. A failed dial is not
// cached; the next call dials again.
func (c *Connection) Get(ctx context.Context) (Client, error) {
	c.mux.Lock()
	defer c.mux.Unlock()

	if c.client != nil {
		return c.client, nil
	}

	client, err := c.dial(ctx)
	if err != nil {
		return nil, err
	}

	c.client = client
	return c.client, nil
}

// Close tears down the shared Client if it was ever opened.
func (c *Connection) Close() error {
	c.mux.Lock()
	defer c.mux.Unlock()

	if c.client == nil {
		return nil
	}

	err := c.client.Close()
	c.client = nil
	return err
}
