package lumena

import "github.com/lumenavis/golumen/voxel"

// Application is a proxy to one open instance in the host registry.
type Application struct {
	c  *Client
	id int32
}

// ID returns the registry ID this proxy is bound to.
func (a *Application) ID() int {
	return int(a.id)
}

// Ping checks that the host still answers.
func (a *Application) Ping() error {
	return a.c.Ping()
}

// Version returns the host version string, e.g. "Lumena 5.2.0".
func (a *Application) Version() (string, error) {
	resp, err := a.c.dc.Call(msgAppVersion, &appReq{App: a.id})
	if err != nil {
		return "", err
	}
	r, ok := resp.(*versionResp)
	if !ok {
		return "", ErrBadResponse
	}
	if err := Error(int(r.Status)); err != nil {
		return "", err
	}
	return r.Version, nil
}

// DataSet returns a proxy to the active dataset, or nil if the
// application has none loaded.
func (a *Application) DataSet() (*DataSet, error) {
	resp, err := a.c.dc.Call(msgAppDataSet, &appReq{App: a.id})
	if err != nil {
		return nil, err
	}
	r, ok := resp.(*handleResp)
	if !ok {
		return nil, ErrBadResponse
	}
	if err := Error(int(r.Status)); err != nil {
		return nil, err
	}
	if r.Handle == 0 {
		return nil, nil
	}
	return &DataSet{c: a.c, app: a.id, handle: r.Handle}, nil
}

// SetDataSet makes ds the active dataset.  Passing nil clears the
// active dataset.
func (a *Application) SetDataSet(ds *DataSet) error {
	var h int64
	if ds != nil {
		h = ds.handle
	}
	resp, err := a.c.dc.Call(msgAppSetDataSet, &setDataSetReq{App: a.id, Handle: h})
	if err != nil {
		return err
	}
	r, ok := resp.(*statusResp)
	if !ok {
		return ErrBadResponse
	}
	return Error(int(r.Status))
}

// CreateDataSet allocates a new dataset of the given type and
// dimensions in the host and makes it active.
func (a *Application) CreateDataSet(t voxel.DataType, nx, ny, nz, nc, nt int) (*DataSet, error) {
	req := &createDataSetReq{
		App:  a.id,
		Type: int32(t),
		NX:   int32(nx),
		NY:   int32(ny),
		NZ:   int32(nz),
		NC:   int32(nc),
		NT:   int32(nt),
	}
	resp, err := a.c.dc.Call(msgAppCreateDataSet, req)
	if err != nil {
		return nil, err
	}
	r, ok := resp.(*handleResp)
	if !ok {
		return nil, ErrBadResponse
	}
	if err := Error(int(r.Status)); err != nil {
		return nil, err
	}
	return &DataSet{c: a.c, app: a.id, handle: r.Handle}, nil
}

// Scene returns the root item of the application's scene graph.
func (a *Application) Scene() (*Item, error) {
	resp, err := a.c.dc.Call(msgAppScene, &appReq{App: a.id})
	if err != nil {
		return nil, err
	}
	r, ok := resp.(*itemResp)
	if !ok {
		return nil, ErrBadResponse
	}
	if err := Error(int(r.Status)); err != nil {
		return nil, err
	}
	return itemFromResp(a.c, a.id, r), nil
}

// Selection returns the currently selected scene item, or nil if
// nothing is selected.
func (a *Application) Selection() (*Item, error) {
	resp, err := a.c.dc.Call(msgAppSelection, &appReq{App: a.id})
	if err != nil {
		return nil, err
	}
	r, ok := resp.(*itemResp)
	if !ok {
		return nil, ErrBadResponse
	}
	if err := Error(int(r.Status)); err != nil {
		return nil, err
	}
	if r.Handle == 0 {
		return nil, nil
	}
	return itemFromResp(a.c, a.id, r), nil
}

// CreateSpots adds a named spots object to the scene.  positions,
// times and radii must have equal lengths; times are zero-based host
// timepoint indices.
func (a *Application) CreateSpots(name string, positions [][3]float32, times []int, radii []float32) (*Spots, error) {
	req := &createSpotsReq{
		App:    a.id,
		Name:   name,
		PosXYZ: flattenPositions(positions),
		Times:  make([]int32, len(times)),
		Radii:  radii,
	}
	for i, t := range times {
		req.Times[i] = int32(t)
	}
	resp, err := a.c.dc.Call(msgAppCreateSpots, req)
	if err != nil {
		return nil, err
	}
	r, ok := resp.(*itemResp)
	if !ok {
		return nil, ErrBadResponse
	}
	if err := Error(int(r.Status)); err != nil {
		return nil, err
	}
	return &Spots{Item: *itemFromResp(a.c, a.id, r)}, nil
}

// Quit asks the host to close this application instance.  The proxy
// and any handles derived from it are invalid afterwards.
func (a *Application) Quit() error {
	resp, err := a.c.dc.Call(msgAppQuit, &appReq{App: a.id})
	if err != nil {
		return err
	}
	r, ok := resp.(*statusResp)
	if !ok {
		return ErrBadResponse
	}
	return Error(int(r.Status))
}
