/*
	This file implements an in-memory Lumena host simulator.  It
	serves the same RC protocol a real installation does, so code
	written against this package can be developed and tested without
	a host on the machine.  The cmd/lumenasim binary wraps it.
*/

package lumena

import (
	"sort"
	"sync"
	"time"

	"github.com/valyala/gorpc"

	"github.com/lumenavis/golumen/voxel"
)

// Sim is an in-memory stand-in for a running Lumena host.  Seed it
// through AddApplication and the SimApp methods, then Start or Serve.
type Sim struct {
	addr string
	d    *gorpc.Dispatcher
	s    *gorpc.Server

	mu         sync.Mutex
	apps       map[int32]*SimApp
	dataReads  int
	dataWrites int
}

// NewSim returns a simulator that will listen on addr.
func NewSim(addr string) *Sim {
	s := &Sim{
		addr: addr,
		apps: make(map[int32]*SimApp),
	}
	s.d = newDispatcher(s)
	s.s = gorpc.NewTCPServer(addr, s.d.NewHandlerFunc())
	return s
}

// Addr returns the listen address.
func (s *Sim) Addr() string {
	return s.addr
}

// Start begins serving in the background.  The listener is bound when
// Start returns.
func (s *Sim) Start() error {
	return s.s.Start()
}

// Serve blocks, serving until Stop is called.
func (s *Sim) Serve() error {
	return s.s.Serve()
}

// Stop halts the server.  Connected clients see dead-connection
// errors afterwards.
func (s *Sim) Stop() {
	s.s.Stop()
}

// VolumeReads reports how many volume fetch requests have arrived,
// counting rejected ones.
func (s *Sim) VolumeReads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataReads
}

// VolumeWrites reports how many volume store requests have arrived,
// counting rejected ones.
func (s *Sim) VolumeWrites() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataWrites
}

// AddApplication registers a simulated application under the given
// registry ID.  Its scene holds a single empty root group.
func (s *Sim) AddApplication(id int, version string) *SimApp {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := &SimApp{
		sim:      s,
		id:       int32(id),
		version:  version,
		items:    make(map[int64]*simItem),
		datasets: make(map[int64]*simDataSet),
	}
	a.root = a.newItem(0, KindGroup, "Scene").handle
	s.apps[int32(id)] = a
	return a
}

// SimApp is one simulated application instance.
type SimApp struct {
	sim     *Sim
	id      int32
	version string

	handleSeq int64
	items     map[int64]*simItem
	root      int64
	selected  int64
	datasets  map[int64]*simDataSet
	active    int64
}

type simItem struct {
	handle   int64
	kind     ItemKind
	name     string
	parent   int64
	children []int64
	visible  bool

	pos   []float32
	times []int32
	radii []float32
}

// simDataSet stores one channel+timepoint slab per entry, indexed
// t*nc + c, each slab x-fastest.
type simDataSet struct {
	dtype              voxel.DataType
	nx, ny, nz, nc, nt int32
	min, max           [3]float32
	unit               string
	t0                 time.Time
	dt                 time.Duration
	u8                 [][]uint8
	u16                [][]uint16
	f32                [][]float32
}

func (a *SimApp) nextHandle() int64 {
	a.handleSeq++
	return a.handleSeq
}

func (a *SimApp) newItem(parent int64, kind ItemKind, name string) *simItem {
	it := &simItem{
		handle:  a.nextHandle(),
		kind:    kind,
		name:    name,
		parent:  parent,
		visible: true,
	}
	a.items[it.handle] = it
	if parent != 0 {
		p := a.items[parent]
		p.children = append(p.children, it.handle)
	}
	return it
}

func newSimDataSet(t voxel.DataType, nx, ny, nz, nc, nt int32) *simDataSet {
	ds := &simDataSet{
		dtype: t,
		nx:    nx, ny: ny, nz: nz, nc: nc, nt: nt,
		max:  [3]float32{float32(nx), float32(ny), float32(nz)},
		unit: "um",
		t0:   time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC),
		dt:   time.Second,
	}
	n := int(nx) * int(ny) * int(nz)
	slabs := int(nc) * int(nt)
	switch t {
	case voxel.Uint8:
		ds.u8 = make([][]uint8, slabs)
		for i := range ds.u8 {
			ds.u8[i] = make([]uint8, n)
		}
	case voxel.Uint16:
		ds.u16 = make([][]uint16, slabs)
		for i := range ds.u16 {
			ds.u16[i] = make([]uint16, n)
		}
	case voxel.Float32:
		ds.f32 = make([][]float32, slabs)
		for i := range ds.f32 {
			ds.f32[i] = make([]float32, n)
		}
	}
	return ds
}

func (a *SimApp) createDataSet(t voxel.DataType, nx, ny, nz, nc, nt int32) int64 {
	h := a.nextHandle()
	a.datasets[h] = newSimDataSet(t, nx, ny, nz, nc, nt)
	a.active = h
	a.newItem(a.root, KindVolume, "Volume")
	return h
}

// CreateDataSet gives the application an active dataset of the given
// type and dimensions.  Zero dimensions simulate a host whose dataset
// holds no volume yet.
func (a *SimApp) CreateDataSet(t voxel.DataType, nx, ny, nz, nc, nt int) {
	a.sim.mu.Lock()
	defer a.sim.mu.Unlock()
	a.createDataSet(t, int32(nx), int32(ny), int32(nz), int32(nc), int32(nt))
}

// SetExtends overrides the world bounding box of the active dataset.
func (a *SimApp) SetExtends(min, max [3]float32) {
	a.sim.mu.Lock()
	defer a.sim.mu.Unlock()
	if ds, ok := a.datasets[a.active]; ok {
		ds.min, ds.max = min, max
	}
}

// SeedVolume fills one channel and timepoint of the active dataset
// from vol, which must match the dataset's type and dimensions.
func (a *SimApp) SeedVolume(channel, timepoint int, vol voxel.Volume) error {
	a.sim.mu.Lock()
	defer a.sim.mu.Unlock()
	ds, ok := a.datasets[a.active]
	if !ok {
		return CodeUnknownHandle
	}
	if vol.Type != ds.dtype {
		return CodeWrongType
	}
	if channel < 0 || channel >= int(ds.nc) || timepoint < 0 || timepoint >= int(ds.nt) {
		return CodeIndexRange
	}
	if vol.Len() != int(ds.nx)*int(ds.ny)*int(ds.nz) {
		return CodeBufferSize
	}
	slab := timepoint*int(ds.nc) + channel
	switch ds.dtype {
	case voxel.Uint8:
		copy(ds.u8[slab], vol.U8)
	case voxel.Uint16:
		copy(ds.u16[slab], vol.U16)
	case voxel.Float32:
		copy(ds.f32[slab], vol.F32)
	}
	return nil
}

// AddGroup adds a group item under parent (0 for the scene root) and
// returns its handle.
func (a *SimApp) AddGroup(parent int64, name string) int64 {
	a.sim.mu.Lock()
	defer a.sim.mu.Unlock()
	if parent == 0 {
		parent = a.root
	}
	return a.newItem(parent, KindGroup, name).handle
}

// AddSpots adds a spots item under the scene root and returns its
// handle.
func (a *SimApp) AddSpots(name string, pos [][3]float32, times []int, radii []float32) int64 {
	a.sim.mu.Lock()
	defer a.sim.mu.Unlock()
	it := a.newItem(a.root, KindSpots, name)
	it.pos = flattenPositions(pos)
	it.times = make([]int32, len(times))
	for i, t := range times {
		it.times[i] = int32(t)
	}
	it.radii = append([]float32(nil), radii...)
	return it.handle
}

// Select marks the item with the given handle as the host selection.
func (a *SimApp) Select(handle int64) {
	a.sim.mu.Lock()
	defer a.sim.mu.Unlock()
	a.selected = handle
}

// Visible reports the visibility flag of an item.
func (a *SimApp) Visible(handle int64) bool {
	a.sim.mu.Lock()
	defer a.sim.mu.Unlock()
	it, ok := a.items[handle]
	return ok && it.visible
}

// newDispatcher builds the RC function table bound to s.  The client
// side derives its dispatcher client from the same table (bound to an
// idle sim) so both ends agree on method names and request types;
// those bindings never execute.
func newDispatcher(s *Sim) *gorpc.Dispatcher {
	d := gorpc.NewDispatcher()
	d.AddFunc(msgPing, s.ping)
	d.AddFunc(msgRegistryCount, s.registryCount)
	d.AddFunc(msgRegistryID, s.registryID)
	d.AddFunc(msgAppVersion, s.appVersion)
	d.AddFunc(msgAppDataSet, s.appDataSet)
	d.AddFunc(msgAppSetDataSet, s.appSetDataSet)
	d.AddFunc(msgAppCreateDataSet, s.appCreateDataSet)
	d.AddFunc(msgAppScene, s.appScene)
	d.AddFunc(msgAppSelection, s.appSelection)
	d.AddFunc(msgAppCreateSpots, s.appCreateSpots)
	d.AddFunc(msgAppQuit, s.appQuit)
	d.AddFunc(msgDataSetType, s.dsType)
	d.AddFunc(msgDataSetSize, s.dsSize)
	d.AddFunc(msgDataSetExtends, s.dsExtends)
	d.AddFunc(msgDataSetSetExt, s.dsSetExtends)
	d.AddFunc(msgDataSetUnit, s.dsUnit)
	d.AddFunc(msgDataSetTimepoint, s.dsTimepoint)
	d.AddFunc(msgVolumeBytes, s.dsVolumeBytes)
	d.AddFunc(msgVolumeShorts, s.dsVolumeShorts)
	d.AddFunc(msgVolumeFloats, s.dsVolumeFloats)
	d.AddFunc(msgSetVolumeBytes, s.dsSetVolumeBytes)
	d.AddFunc(msgSetVolumeShorts, s.dsSetVolumeShorts)
	d.AddFunc(msgSetVolumeFloats, s.dsSetVolumeFloats)
	d.AddFunc(msgItemNumChildren, s.itemNumChildren)
	d.AddFunc(msgItemChild, s.itemChild)
	d.AddFunc(msgItemParent, s.itemParent)
	d.AddFunc(msgItemSetVisible, s.itemSetVisible)
	d.AddFunc(msgSpotsGet, s.spotsGet)
	d.AddFunc(msgSpotsSet, s.spotsSet)
	return d
}

func status(c Code) *statusResp {
	return &statusResp{Status: int32(c)}
}

func (s *Sim) ping(req *pingReq) *statusResp {
	return status(CodeOK)
}

func (s *Sim) registryCount(req *countReq) *countResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &countResp{Count: int32(len(s.apps))}
}

func (s *Sim) registryID(req *registryIDReq) *registryIDResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int32, 0, len(s.apps))
	for id := range s.apps {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if req.Index < 0 || int(req.Index) >= len(ids) {
		return &registryIDResp{Status: int32(CodeIndexRange)}
	}
	return &registryIDResp{ID: ids[req.Index]}
}

func (s *Sim) appVersion(req *appReq) *versionResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.apps[req.App]
	if !ok {
		return &versionResp{Status: int32(CodeUnknownApplication)}
	}
	return &versionResp{Version: a.version}
}

func (s *Sim) appDataSet(req *appReq) *handleResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.apps[req.App]
	if !ok {
		return &handleResp{Status: int32(CodeUnknownApplication)}
	}
	return &handleResp{Handle: a.active}
}

func (s *Sim) appSetDataSet(req *setDataSetReq) *statusResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.apps[req.App]
	if !ok {
		return status(CodeUnknownApplication)
	}
	if req.Handle != 0 {
		if _, ok := a.datasets[req.Handle]; !ok {
			return status(CodeUnknownHandle)
		}
	}
	a.active = req.Handle
	return status(CodeOK)
}

func (s *Sim) appCreateDataSet(req *createDataSetReq) *handleResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.apps[req.App]
	if !ok {
		return &handleResp{Status: int32(CodeUnknownApplication)}
	}
	if !voxel.DataType(req.Type).Valid() {
		return &handleResp{Status: int32(CodeBadArgument)}
	}
	if req.NX < 1 || req.NY < 1 || req.NZ < 1 || req.NC < 1 || req.NT < 1 {
		return &handleResp{Status: int32(CodeBadArgument)}
	}
	h := a.createDataSet(voxel.DataType(req.Type), req.NX, req.NY, req.NZ, req.NC, req.NT)
	return &handleResp{Handle: h}
}

func (s *Sim) appScene(req *appReq) *itemResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.apps[req.App]
	if !ok {
		return &itemResp{Status: int32(CodeUnknownApplication)}
	}
	return simItemResp(a.items[a.root])
}

func (s *Sim) appSelection(req *appReq) *itemResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.apps[req.App]
	if !ok {
		return &itemResp{Status: int32(CodeUnknownApplication)}
	}
	if a.selected == 0 {
		return &itemResp{}
	}
	it, ok := a.items[a.selected]
	if !ok {
		return &itemResp{}
	}
	return simItemResp(it)
}

func (s *Sim) appCreateSpots(req *createSpotsReq) *itemResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.apps[req.App]
	if !ok {
		return &itemResp{Status: int32(CodeUnknownApplication)}
	}
	if len(req.PosXYZ) != 3*len(req.Times) || len(req.Times) != len(req.Radii) {
		return &itemResp{Status: int32(CodeLengthMismatch)}
	}
	for _, t := range req.Times {
		if t < 0 {
			return &itemResp{Status: int32(CodeBadArgument)}
		}
	}
	it := a.newItem(a.root, KindSpots, req.Name)
	it.pos = append([]float32(nil), req.PosXYZ...)
	it.times = append([]int32(nil), req.Times...)
	it.radii = append([]float32(nil), req.Radii...)
	return simItemResp(it)
}

func (s *Sim) appQuit(req *appReq) *statusResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.apps[req.App]; !ok {
		return status(CodeUnknownApplication)
	}
	delete(s.apps, req.App)
	return status(CodeOK)
}

// dataset resolves an app+handle pair to a dataset, both maps locked.
func (s *Sim) dataset(app int32, handle int64) (*simDataSet, Code) {
	a, ok := s.apps[app]
	if !ok {
		return nil, CodeUnknownApplication
	}
	ds, ok := a.datasets[handle]
	if !ok {
		return nil, CodeUnknownHandle
	}
	return ds, CodeOK
}

func (s *Sim) dsType(req *objReq) *typeResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	ds, code := s.dataset(req.App, req.Handle)
	if code != CodeOK {
		return &typeResp{Status: int32(code)}
	}
	return &typeResp{Type: int32(ds.dtype)}
}

func (s *Sim) dsSize(req *objReq) *sizeResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	ds, code := s.dataset(req.App, req.Handle)
	if code != CodeOK {
		return &sizeResp{Status: int32(code)}
	}
	return &sizeResp{X: ds.nx, Y: ds.ny, Z: ds.nz, C: ds.nc, T: ds.nt}
}

func (s *Sim) dsExtends(req *objReq) *extendsResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	ds, code := s.dataset(req.App, req.Handle)
	if code != CodeOK {
		return &extendsResp{Status: int32(code)}
	}
	return &extendsResp{Min: ds.min, Max: ds.max}
}

func (s *Sim) dsSetExtends(req *setExtendsReq) *statusResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	ds, code := s.dataset(req.App, req.Handle)
	if code != CodeOK {
		return status(code)
	}
	ds.min, ds.max = req.Min, req.Max
	return status(CodeOK)
}

func (s *Sim) dsUnit(req *objReq) *unitResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	ds, code := s.dataset(req.App, req.Handle)
	if code != CodeOK {
		return &unitResp{Status: int32(code)}
	}
	return &unitResp{Unit: ds.unit}
}

func (s *Sim) dsTimepoint(req *timepointReq) *timepointResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	ds, code := s.dataset(req.App, req.Handle)
	if code != CodeOK {
		return &timepointResp{Status: int32(code)}
	}
	if req.Index < 0 || req.Index >= ds.nt {
		return &timepointResp{Status: int32(CodeIndexRange)}
	}
	stamp := ds.t0.Add(time.Duration(req.Index) * ds.dt)
	return &timepointResp{Stamp: stamp.Format("2006-01-02 15:04:05.000")}
}

// slab resolves a volume request to a slab index, checking channel,
// timepoint and datatype.
func (ds *simDataSet) slab(t voxel.DataType, channel, timepoint int32) (int, Code) {
	if channel < 0 || channel >= ds.nc || timepoint < 0 || timepoint >= ds.nt {
		return 0, CodeIndexRange
	}
	if ds.dtype != t {
		return 0, CodeWrongType
	}
	return int(timepoint)*int(ds.nc) + int(channel), CodeOK
}

func (s *Sim) dsVolumeBytes(req *volumeReq) *bytesResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataReads++
	ds, code := s.dataset(req.App, req.Handle)
	if code != CodeOK {
		return &bytesResp{Status: int32(code)}
	}
	i, code := ds.slab(voxel.Uint8, req.Channel, req.Timepoint)
	if code != CodeOK {
		return &bytesResp{Status: int32(code)}
	}
	return &bytesResp{Data: append([]uint8(nil), ds.u8[i]...)}
}

func (s *Sim) dsVolumeShorts(req *volumeReq) *shortsResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataReads++
	ds, code := s.dataset(req.App, req.Handle)
	if code != CodeOK {
		return &shortsResp{Status: int32(code)}
	}
	i, code := ds.slab(voxel.Uint16, req.Channel, req.Timepoint)
	if code != CodeOK {
		return &shortsResp{Status: int32(code)}
	}
	return &shortsResp{Data: append([]uint16(nil), ds.u16[i]...)}
}

func (s *Sim) dsVolumeFloats(req *volumeReq) *floatsResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataReads++
	ds, code := s.dataset(req.App, req.Handle)
	if code != CodeOK {
		return &floatsResp{Status: int32(code)}
	}
	i, code := ds.slab(voxel.Float32, req.Channel, req.Timepoint)
	if code != CodeOK {
		return &floatsResp{Status: int32(code)}
	}
	return &floatsResp{Data: append([]float32(nil), ds.f32[i]...)}
}

func (s *Sim) dsSetVolumeBytes(req *setBytesReq) *statusResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataWrites++
	ds, code := s.dataset(req.App, req.Handle)
	if code != CodeOK {
		return status(code)
	}
	i, code := ds.slab(voxel.Uint8, req.Channel, req.Timepoint)
	if code != CodeOK {
		return status(code)
	}
	if len(req.Data) != len(ds.u8[i]) {
		return status(CodeBufferSize)
	}
	copy(ds.u8[i], req.Data)
	return status(CodeOK)
}

func (s *Sim) dsSetVolumeShorts(req *setShortsReq) *statusResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataWrites++
	ds, code := s.dataset(req.App, req.Handle)
	if code != CodeOK {
		return status(code)
	}
	i, code := ds.slab(voxel.Uint16, req.Channel, req.Timepoint)
	if code != CodeOK {
		return status(code)
	}
	if len(req.Data) != len(ds.u16[i]) {
		return status(CodeBufferSize)
	}
	copy(ds.u16[i], req.Data)
	return status(CodeOK)
}

func (s *Sim) dsSetVolumeFloats(req *setFloatsReq) *statusResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataWrites++
	ds, code := s.dataset(req.App, req.Handle)
	if code != CodeOK {
		return status(code)
	}
	i, code := ds.slab(voxel.Float32, req.Channel, req.Timepoint)
	if code != CodeOK {
		return status(code)
	}
	if len(req.Data) != len(ds.f32[i]) {
		return status(CodeBufferSize)
	}
	copy(ds.f32[i], req.Data)
	return status(CodeOK)
}

// item resolves an app+handle pair to a scene item, both maps locked.
func (s *Sim) item(app int32, handle int64) (*simItem, Code) {
	a, ok := s.apps[app]
	if !ok {
		return nil, CodeUnknownApplication
	}
	it, ok := a.items[handle]
	if !ok {
		return nil, CodeUnknownHandle
	}
	return it, CodeOK
}

func simItemResp(it *simItem) *itemResp {
	return &itemResp{Handle: it.handle, Kind: int32(it.kind), Name: it.name}
}

func (s *Sim) itemNumChildren(req *objReq) *intResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, code := s.item(req.App, req.Handle)
	if code != CodeOK {
		return &intResp{Status: int32(code)}
	}
	return &intResp{N: int32(len(it.children))}
}

func (s *Sim) itemChild(req *childReq) *itemResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, code := s.item(req.App, req.Handle)
	if code != CodeOK {
		return &itemResp{Status: int32(code)}
	}
	if it.kind != KindGroup {
		return &itemResp{Status: int32(CodeNotContainer)}
	}
	if req.Index < 0 || int(req.Index) >= len(it.children) {
		return &itemResp{Status: int32(CodeIndexRange)}
	}
	a := s.apps[req.App]
	return simItemResp(a.items[it.children[req.Index]])
}

func (s *Sim) itemParent(req *objReq) *itemResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, code := s.item(req.App, req.Handle)
	if code != CodeOK {
		return &itemResp{Status: int32(code)}
	}
	if it.parent == 0 {
		return &itemResp{}
	}
	a := s.apps[req.App]
	return simItemResp(a.items[it.parent])
}

func (s *Sim) itemSetVisible(req *setVisibleReq) *statusResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, code := s.item(req.App, req.Handle)
	if code != CodeOK {
		return status(code)
	}
	it.visible = req.Visible
	return status(CodeOK)
}

func (s *Sim) spotsGet(req *objReq) *spotsResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, code := s.item(req.App, req.Handle)
	if code != CodeOK {
		return &spotsResp{Status: int32(code)}
	}
	if it.kind != KindSpots {
		return &spotsResp{Status: int32(CodeNotSpots)}
	}
	return &spotsResp{
		PosXYZ: append([]float32(nil), it.pos...),
		Times:  append([]int32(nil), it.times...),
		Radii:  append([]float32(nil), it.radii...),
	}
}

func (s *Sim) spotsSet(req *setSpotsReq) *statusResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, code := s.item(req.App, req.Handle)
	if code != CodeOK {
		return status(code)
	}
	if it.kind != KindSpots {
		return status(CodeNotSpots)
	}
	if len(req.PosXYZ) != 3*len(req.Times) || len(req.Times) != len(req.Radii) {
		return status(CodeLengthMismatch)
	}
	for _, t := range req.Times {
		if t < 0 {
			return status(CodeBadArgument)
		}
	}
	it.pos = append([]float32(nil), req.PosXYZ...)
	it.times = append([]int32(nil), req.Times...)
	it.radii = append([]float32(nil), req.Radii...)
	return status(CodeOK)
}
