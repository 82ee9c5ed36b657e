/*
	This file defines the RC wire protocol: one method name and one
	request/reply struct pair per remote call.  The client and the
	simulator both speak exactly these.  Replies carry the host error
	code in Status; transport-level failures surface separately as
	gorpc client errors.
*/

package lumena

import "github.com/valyala/gorpc"

const (
	msgPing = "rc.ping"

	msgRegistryCount = "rc.registry.count"
	msgRegistryID    = "rc.registry.id"

	msgAppVersion       = "rc.app.version"
	msgAppDataSet       = "rc.app.dataSet"
	msgAppSetDataSet    = "rc.app.setDataSet"
	msgAppCreateDataSet = "rc.app.createDataSet"
	msgAppScene         = "rc.app.scene"
	msgAppSelection     = "rc.app.selection"
	msgAppCreateSpots   = "rc.app.createSpots"
	msgAppQuit          = "rc.app.quit"

	msgDataSetType      = "rc.dataSet.type"
	msgDataSetSize      = "rc.dataSet.size"
	msgDataSetExtends   = "rc.dataSet.extends"
	msgDataSetSetExt    = "rc.dataSet.setExtends"
	msgDataSetUnit      = "rc.dataSet.unit"
	msgDataSetTimepoint = "rc.dataSet.timepoint"

	msgVolumeBytes     = "rc.dataSet.volumeBytes"
	msgVolumeShorts    = "rc.dataSet.volumeShorts"
	msgVolumeFloats    = "rc.dataSet.volumeFloats"
	msgSetVolumeBytes  = "rc.dataSet.setVolumeBytes"
	msgSetVolumeShorts = "rc.dataSet.setVolumeShorts"
	msgSetVolumeFloats = "rc.dataSet.setVolumeFloats"

	msgItemNumChildren = "rc.item.numChildren"
	msgItemChild       = "rc.item.child"
	msgItemParent      = "rc.item.parent"
	msgItemSetVisible  = "rc.item.setVisible"

	msgSpotsGet = "rc.spots.get"
	msgSpotsSet = "rc.spots.set"
)

type pingReq struct{}

type statusResp struct {
	Status int32
}

type countReq struct{}

type countResp struct {
	Status int32
	Count  int32
}

type registryIDReq struct {
	Index int32
}

type registryIDResp struct {
	Status int32
	ID     int32
}

// appReq addresses an application-scoped method with no arguments.
type appReq struct {
	App int32
}

type versionResp struct {
	Status  int32
	Version string
}

type handleResp struct {
	Status int32
	Handle int64
}

// itemResp describes one scene item; Handle 0 means "no item".
type itemResp struct {
	Status int32
	Handle int64
	Kind   int32
	Name   string
}

type setDataSetReq struct {
	App    int32
	Handle int64
}

type createDataSetReq struct {
	App  int32
	Type int32
	NX   int32
	NY   int32
	NZ   int32
	NC   int32
	NT   int32
}

// objReq addresses a dataset- or item-scoped method with no arguments.
type objReq struct {
	App    int32
	Handle int64
}

type typeResp struct {
	Status int32
	Type   int32
}

type sizeResp struct {
	Status int32
	X      int32
	Y      int32
	Z      int32
	C      int32
	T      int32
}

type extendsResp struct {
	Status int32
	Min    [3]float32
	Max    [3]float32
}

type setExtendsReq struct {
	App    int32
	Handle int64
	Min    [3]float32
	Max    [3]float32
}

type unitResp struct {
	Status int32
	Unit   string
}

type timepointReq struct {
	App    int32
	Handle int64
	Index  int32
}

type timepointResp struct {
	Status int32
	Stamp  string
}

type volumeReq struct {
	App       int32
	Handle    int64
	Channel   int32
	Timepoint int32
}

type bytesResp struct {
	Status int32
	Data   []uint8
}

type shortsResp struct {
	Status int32
	Data   []uint16
}

type floatsResp struct {
	Status int32
	Data   []float32
}

type setBytesReq struct {
	App       int32
	Handle    int64
	Channel   int32
	Timepoint int32
	Data      []uint8
}

type setShortsReq struct {
	App       int32
	Handle    int64
	Channel   int32
	Timepoint int32
	Data      []uint16
}

type setFloatsReq struct {
	App       int32
	Handle    int64
	Channel   int32
	Timepoint int32
	Data      []float32
}

type childReq struct {
	App    int32
	Handle int64
	Index  int32
}

type intResp struct {
	Status int32
	N      int32
}

type setVisibleReq struct {
	App     int32
	Handle  int64
	Visible bool
}

// spots travel flat: PosXYZ is x-y-z interleaved with stride 3, so
// len(PosXYZ) == 3*len(Times) == 3*len(Radii).
type spotsResp struct {
	Status int32
	PosXYZ []float32
	Times  []int32
	Radii  []float32
}

type setSpotsReq struct {
	App    int32
	Handle int64
	PosXYZ []float32
	Times  []int32
	Radii  []float32
}

type createSpotsReq struct {
	App    int32
	Name   string
	PosXYZ []float32
	Times  []int32
	Radii  []float32
}

func init() {
	gorpc.RegisterType(&pingReq{})
	gorpc.RegisterType(&statusResp{})
	gorpc.RegisterType(&countReq{})
	gorpc.RegisterType(&countResp{})
	gorpc.RegisterType(&registryIDReq{})
	gorpc.RegisterType(&registryIDResp{})
	gorpc.RegisterType(&appReq{})
	gorpc.RegisterType(&versionResp{})
	gorpc.RegisterType(&handleResp{})
	gorpc.RegisterType(&itemResp{})
	gorpc.RegisterType(&setDataSetReq{})
	gorpc.RegisterType(&createDataSetReq{})
	gorpc.RegisterType(&objReq{})
	gorpc.RegisterType(&typeResp{})
	gorpc.RegisterType(&sizeResp{})
	gorpc.RegisterType(&extendsResp{})
	gorpc.RegisterType(&setExtendsReq{})
	gorpc.RegisterType(&unitResp{})
	gorpc.RegisterType(&timepointReq{})
	gorpc.RegisterType(&timepointResp{})
	gorpc.RegisterType(&volumeReq{})
	gorpc.RegisterType(&bytesResp{})
	gorpc.RegisterType(&shortsResp{})
	gorpc.RegisterType(&floatsResp{})
	gorpc.RegisterType(&setBytesReq{})
	gorpc.RegisterType(&setShortsReq{})
	gorpc.RegisterType(&setFloatsReq{})
	gorpc.RegisterType(&childReq{})
	gorpc.RegisterType(&intResp{})
	gorpc.RegisterType(&setVisibleReq{})
	gorpc.RegisterType(&spotsResp{})
	gorpc.RegisterType(&setSpotsReq{})
	gorpc.RegisterType(&createSpotsReq{})
}
