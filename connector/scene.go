/*
	This file holds the scene-graph conveniences: filtered traversal,
	selection, and spot-object transfer with index-base conversion.
*/

package connector

import (
	"errors"
	"fmt"

	"github.com/lumenavis/golumen/lumena"
)

// SceneChildren collects items below the scene root, depth-first when
// recursive is true, keeping only the named kinds (every kind when
// none are named).  Groups are the only containers, so recursion
// descends through groups regardless of the filter.
func (c *Connector) SceneChildren(recursive bool, kinds ...lumena.ItemKind) ([]*lumena.Item, error) {
	if !c.IsAlive() {
		return nil, lumena.ErrNotAttached
	}
	root, err := c.app.Scene()
	if err != nil {
		return nil, err
	}
	var out []*lumena.Item
	if err := collectChildren(root, recursive, kinds, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func collectChildren(parent *lumena.Item, recursive bool, kinds []lumena.ItemKind, out *[]*lumena.Item) error {
	n, err := parent.NumChildren()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		child, err := parent.Child(i)
		if err != nil {
			return err
		}
		if matchKind(child.Kind, kinds) {
			*out = append(*out, child)
		}
		if recursive && child.Kind == lumena.KindGroup {
			if err := collectChildren(child, recursive, kinds, out); err != nil {
				return err
			}
		}
	}
	return nil
}

func matchKind(k lumena.ItemKind, kinds []lumena.ItemKind) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

// Selection returns the item currently selected in the host, or nil
// when nothing is selected.
func (c *Connector) Selection() (*lumena.Item, error) {
	if !c.IsAlive() {
		return nil, lumena.ErrNotAttached
	}
	return c.app.Selection()
}

// SceneItemParent returns the parent of item, or nil for the scene
// root.
func (c *Connector) SceneItemParent(item *lumena.Item) (*lumena.Item, error) {
	if item == nil {
		return nil, errors.New("item is nil")
	}
	if !c.IsAlive() {
		return nil, lumena.ErrNotAttached
	}
	return item.Parent()
}

// GetSpots reads the point set of a spots item, with time indices
// converted to the connector's base.
func (c *Connector) GetSpots(item *lumena.Item) (lumena.SpotData, error) {
	if item == nil {
		return lumena.SpotData{}, errors.New("item is nil")
	}
	if !c.IsAlive() {
		return lumena.SpotData{}, lumena.ErrNotAttached
	}
	spots, err := item.Spots()
	if err != nil {
		return lumena.SpotData{}, err
	}
	d, err := spots.Get()
	if err != nil {
		return lumena.SpotData{}, err
	}
	for i := range d.Times {
		d.Times[i] += c.base
	}
	return d, nil
}

// CreateSpots adds a named spots object to the scene, with time
// indices given in the connector's base.  positions, times and radii
// must have equal lengths.
func (c *Connector) CreateSpots(name string, positions [][3]float32, times []int, radii []float32) (*lumena.Spots, error) {
	if !c.IsAlive() {
		return nil, lumena.ErrNotAttached
	}
	if len(positions) != len(times) || len(times) != len(radii) {
		return nil, fmt.Errorf("positions, times and radii lengths differ: %d, %d, %d",
			len(positions), len(times), len(radii))
	}
	conv := make([]int, len(times))
	for i, t := range times {
		conv[i] = t - c.base
		if conv[i] < 0 {
			return nil, fmt.Errorf("time index %d below the indexing base %d", t, c.base)
		}
	}
	return c.app.CreateSpots(name, positions, conv, radii)
}
