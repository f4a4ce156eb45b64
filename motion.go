package main

import (
	"strconv"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// State is one end of a transition.
type State struct {
	Opacity float64
	OffsetY int // px, positive is below the resting position
}

// Variant is a named transition preset. The stylesheet reads its values from
// CSS custom properties written by Attrs.
type Variant struct {
	Name     string
	Hidden   State
	Visible  State
	Duration time.Duration
	Stagger  time.Duration // delay between consecutive children
}

// Trigger selects when a variant plays.
type Trigger string

const (
	// TriggerLoad plays once when the page loads.
	TriggerLoad Trigger = "load"
	// TriggerInView plays the first time the element scrolls into view.
	TriggerInView Trigger = "inview"
	// TriggerChild plays when the nearest in-view ancestor is revealed.
	TriggerChild Trigger = "child"
)

var (
	ContainerVariant = Variant{
		Name:    "container",
		Hidden:  State{Opacity: 0},
		Visible: State{Opacity: 1},
		Stagger: 100 * time.Millisecond,
	}
	ItemVariant = Variant{
		Name:     "item",
		Hidden:   State{Opacity: 0, OffsetY: 20},
		Visible:  State{Opacity: 1},
		Duration: 500 * time.Millisecond,
	}
	NavVariant = Variant{
		Name:     "nav",
		Hidden:   State{Opacity: 1, OffsetY: -100},
		Visible:  State{Opacity: 1},
		Duration: 400 * time.Millisecond,
	}
	RevealVariant = Variant{
		Name:     "reveal",
		Hidden:   State{Opacity: 0, OffsetY: 50},
		Visible:  State{Opacity: 1},
		Duration: 600 * time.Millisecond,
	}
	FadeVariant = Variant{
		Name:     "fade",
		Hidden:   State{Opacity: 0},
		Visible:  State{Opacity: 1},
		Duration: 500 * time.Millisecond,
	}
)

// ChildDelay is the start offset of the index-th child staggered by v.
func (v Variant) ChildDelay(index int) time.Duration {
	return time.Duration(index) * v.Stagger
}

// Style encodes the variant as CSS custom properties.
func (v Variant) Style(delay time.Duration) string {
	var b strings.Builder
	b.WriteString("--from-opacity:" + formatOpacity(v.Hidden.Opacity) + ";")
	b.WriteString("--from-y:" + strconv.Itoa(v.Hidden.OffsetY) + "px;")
	b.WriteString("--to-opacity:" + formatOpacity(v.Visible.Opacity) + ";")
	b.WriteString("--to-y:" + strconv.Itoa(v.Visible.OffsetY) + "px;")
	b.WriteString("--duration:" + formatMillis(v.Duration) + ";")
	b.WriteString("--delay:" + formatMillis(delay))
	return b.String()
}

// Attrs returns the attributes that attach v to an element.
func (v Variant) Attrs(t Trigger, delay time.Duration) g.Node {
	attrs := g.Group{
		h.Data("motion", string(t)),
		h.Data("variant", v.Name),
	}
	if t == TriggerInView {
		attrs = append(attrs, h.Data("reveal", "once"))
	}
	return append(attrs, g.Attr("style", v.Style(delay)))
}

func formatOpacity(o float64) string {
	return strconv.FormatFloat(o, 'f', -1, 64)
}

func formatMillis(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}
