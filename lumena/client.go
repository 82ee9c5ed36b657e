/*
	Package lumena provides remote control of a running Lumena
	visualization host.  The host exposes an RPC registry of open
	application instances; each application owns a scene graph and at
	most one active dataset.  Dial connects to the registry, and
	GetApplication binds a proxy to one instance:

		c, err := lumena.Dial(lumena.DefaultAddress)
		if err != nil {
			// no host listening
		}
		defer c.Close()
		app, err := c.GetApplication(0)

	All proxies (Application, DataSet, Item, Spots) are thin handles;
	every method is one remote call and holds no client-side cache.
*/

package lumena

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/valyala/gorpc"
)

// DefaultAddress is where a local Lumena host listens for RC traffic.
const DefaultAddress = "localhost:7464"

const (
	requestTimeout = 20 * time.Second
	pingTimeout    = 3 * time.Second
)

// Client speaks the RC protocol to one Lumena host.
type Client struct {
	addr string
	c    *gorpc.Client
	dc   *gorpc.DispatcherClient
}

// funcTable teaches dispatcher clients the RC method names and
// request types.  Its handler bindings never run on the client side.
var funcTable = newDispatcher(new(Sim))

// Dial connects to a Lumena host and verifies it responds to pings.
// The attempt is retried with exponential backoff for up to three
// seconds before giving up.
func Dial(addr string) (*Client, error) {
	c := gorpc.NewTCPClient(addr)
	c.RequestTimeout = requestTimeout
	c.Start()
	cl := &Client{
		addr: addr,
		c:    c,
		dc:   funcTable.NewFuncClient(c),
	}
	op := func() error {
		return cl.Ping()
	}
	err := backoff.Retry(op, &backoff.ExponentialBackOff{
		InitialInterval:     25 * time.Millisecond,
		RandomizationFactor: 0,
		Multiplier:          2,
		MaxInterval:         time.Second,
		MaxElapsedTime:      3 * time.Second,
		Clock:               backoff.SystemClock,
	})
	if err != nil {
		c.Stop()
		return nil, fmt.Errorf("connection timeout to %s", addr)
	}
	return cl, nil
}

// Addr returns the address the client dialed.
func (c *Client) Addr() string {
	return c.addr
}

// Ping checks that the host answers.  It uses a short timeout so a
// dead host is detected quickly.
func (c *Client) Ping() error {
	resp, err := c.dc.CallTimeout(msgPing, &pingReq{}, pingTimeout)
	if err != nil {
		return err
	}
	r, ok := resp.(*statusResp)
	if !ok {
		return ErrBadResponse
	}
	return Error(int(r.Status))
}

// NumberOfApplications returns how many application instances the
// host registry currently holds.
func (c *Client) NumberOfApplications() (int, error) {
	resp, err := c.dc.Call(msgRegistryCount, &countReq{})
	if err != nil {
		return 0, err
	}
	r, ok := resp.(*countResp)
	if !ok {
		return 0, ErrBadResponse
	}
	return int(r.Count), Error(int(r.Status))
}

// ApplicationID resolves a registry index (0..N-1) to a stable
// application ID.
func (c *Client) ApplicationID(index int) (int, error) {
	resp, err := c.dc.Call(msgRegistryID, &registryIDReq{Index: int32(index)})
	if err != nil {
		return 0, err
	}
	r, ok := resp.(*registryIDResp)
	if !ok {
		return 0, ErrBadResponse
	}
	if err := Error(int(r.Status)); err != nil {
		return 0, err
	}
	return int(r.ID), nil
}

// GetApplication binds a proxy to the application with the given ID.
// The ID is validated with one remote call before the proxy is
// returned.
func (c *Client) GetApplication(id int) (*Application, error) {
	app := &Application{c: c, id: int32(id)}
	if _, err := app.Version(); err != nil {
		return nil, err
	}
	return app, nil
}

// Close stops the underlying connection.  Proxies bound through this
// client are dead afterwards.
func (c *Client) Close() error {
	c.c.Stop()
	return nil
}
