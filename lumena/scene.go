package lumena

import "fmt"

// ItemKind discriminates scene graph node types.
type ItemKind int32

const (
	KindUnknown ItemKind = iota
	KindGroup
	KindVolume
	KindSpots
	KindSurfaces
	KindFrame
	KindLightSource
	KindCamera
)

var kindNames = map[ItemKind]string{
	KindUnknown:     "Unknown",
	KindGroup:       "Group",
	KindVolume:      "Volume",
	KindSpots:       "Spots",
	KindSurfaces:    "Surfaces",
	KindFrame:       "Frame",
	KindLightSource: "LightSource",
	KindCamera:      "Camera",
}

func (k ItemKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ItemKind(%d)", int32(k))
}

// Item is a proxy to one node of an application's scene graph.
type Item struct {
	c   *Client
	app int32

	Handle int64
	Kind   ItemKind
	Name   string
}

func itemFromResp(c *Client, app int32, r *itemResp) *Item {
	return &Item{
		c:      c,
		app:    app,
		Handle: r.Handle,
		Kind:   ItemKind(r.Kind),
		Name:   r.Name,
	}
}

// NumChildren returns how many direct children the item has.  Only
// groups have children.
func (it *Item) NumChildren() (int, error) {
	resp, err := it.c.dc.Call(msgItemNumChildren, &objReq{App: it.app, Handle: it.Handle})
	if err != nil {
		return 0, err
	}
	r, ok := resp.(*intResp)
	if !ok {
		return 0, ErrBadResponse
	}
	if err := Error(int(r.Status)); err != nil {
		return 0, err
	}
	return int(r.N), nil
}

// Child returns the index-th direct child.
func (it *Item) Child(index int) (*Item, error) {
	req := &childReq{App: it.app, Handle: it.Handle, Index: int32(index)}
	resp, err := it.c.dc.Call(msgItemChild, req)
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
	return itemFromResp(it.c, it.app, r), nil
}

// Parent returns the item's parent, or nil for the scene root.
func (it *Item) Parent() (*Item, error) {
	resp, err := it.c.dc.Call(msgItemParent, &objReq{App: it.app, Handle: it.Handle})
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
	return itemFromResp(it.c, it.app, r), nil
}

// SetVisible shows or hides the item in the host viewport.
func (it *Item) SetVisible(visible bool) error {
	req := &setVisibleReq{App: it.app, Handle: it.Handle, Visible: visible}
	resp, err := it.c.dc.Call(msgItemSetVisible, req)
	if err != nil {
		return err
	}
	r, ok := resp.(*statusResp)
	if !ok {
		return ErrBadResponse
	}
	return Error(int(r.Status))
}

// Spots narrows the item to a spots proxy.  Items of any other kind
// return CodeNotSpots.
func (it *Item) Spots() (*Spots, error) {
	if it.Kind != KindSpots {
		return nil, CodeNotSpots
	}
	return &Spots{Item: *it}, nil
}

// Spots is a proxy to a spots object in the scene.
type Spots struct {
	Item
}

// SpotData holds the point set of a spots object.  Times are
// zero-based host timepoint indices; Positions are world coordinates.
type SpotData struct {
	Positions [][3]float32
	Times     []int
	Radii     []float32
}

// Get fetches the full point set.
func (s *Spots) Get() (SpotData, error) {
	resp, err := s.c.dc.Call(msgSpotsGet, &objReq{App: s.app, Handle: s.Handle})
	if err != nil {
		return SpotData{}, err
	}
	r, ok := resp.(*spotsResp)
	if !ok {
		return SpotData{}, ErrBadResponse
	}
	if err := Error(int(r.Status)); err != nil {
		return SpotData{}, err
	}
	d := SpotData{
		Positions: unflattenPositions(r.PosXYZ),
		Times:     make([]int, len(r.Times)),
		Radii:     r.Radii,
	}
	for i, t := range r.Times {
		d.Times[i] = int(t)
	}
	return d, nil
}

// Set replaces the full point set.  Positions, Times and Radii must
// have equal lengths.
func (s *Spots) Set(d SpotData) error {
	req := &setSpotsReq{
		App:    s.app,
		Handle: s.Handle,
		PosXYZ: flattenPositions(d.Positions),
		Times:  make([]int32, len(d.Times)),
		Radii:  d.Radii,
	}
	for i, t := range d.Times {
		req.Times[i] = int32(t)
	}
	resp, err := s.c.dc.Call(msgSpotsSet, req)
	if err != nil {
		return err
	}
	r, ok := resp.(*statusResp)
	if !ok {
		return ErrBadResponse
	}
	return Error(int(r.Status))
}

func flattenPositions(pos [][3]float32) []float32 {
	out := make([]float32, 0, 3*len(pos))
	for _, p := range pos {
		out = append(out, p[0], p[1], p[2])
	}
	return out
}

func unflattenPositions(flat []float32) [][3]float32 {
	out := make([][3]float32, len(flat)/3)
	for i := range out {
		out[i] = [3]float32{flat[3*i], flat[3*i+1], flat[3*i+2]}
	}
	return out
}
