package main

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	h "maragu.dev/gomponents/html"
)

func TestPresets(t *testing.T) {
	assert.Equal(t, 100*time.Millisecond, ContainerVariant.Stagger)
	assert.Equal(t, State{Opacity: 0}, ContainerVariant.Hidden)
	assert.Equal(t, State{Opacity: 1}, ContainerVariant.Visible)

	assert.Equal(t, State{Opacity: 0, OffsetY: 20}, ItemVariant.Hidden)
	assert.Equal(t, State{Opacity: 1, OffsetY: 0}, ItemVariant.Visible)
	assert.Equal(t, 500*time.Millisecond, ItemVariant.Duration)

	assert.Equal(t, -100, NavVariant.Hidden.OffsetY)
	assert.Equal(t, 50, RevealVariant.Hidden.OffsetY)
	assert.Equal(t, 600*time.Millisecond, RevealVariant.Duration)
}

func TestChildDelay(t *testing.T) {
	assert.Zero(t, ContainerVariant.ChildDelay(0))
	assert.Equal(t, 100*time.Millisecond, ContainerVariant.ChildDelay(1))
	assert.Equal(t, 400*time.Millisecond, ContainerVariant.ChildDelay(4))
	assert.Zero(t, ItemVariant.ChildDelay(3))
}

func TestVariantStyle(t *testing.T) {
	got := ItemVariant.Style(300 * time.Millisecond)
	assert.Equal(t, "--from-opacity:0;--from-y:20px;--to-opacity:1;--to-y:0px;--duration:500ms;--delay:300ms", got)

	got = NavVariant.Style(0)
	assert.Equal(t, "--from-opacity:1;--from-y:-100px;--to-opacity:1;--to-y:0px;--duration:400ms;--delay:0ms", got)

	half := Variant{Hidden: State{Opacity: 0.5}, Visible: State{Opacity: 1}, Duration: 1500 * time.Millisecond}
	assert.True(t, strings.HasPrefix(half.Style(0), "--from-opacity:0.5;"))
	assert.Contains(t, half.Style(0), "--duration:1500ms")
}

func TestVariantAttrs(t *testing.T) {
	var b strings.Builder
	require.NoError(t, h.Div(RevealVariant.Attrs(TriggerInView, 0)).Render(&b))
	assert.Contains(t, b.String(), `data-motion="inview"`)
	assert.Contains(t, b.String(), `data-variant="reveal"`)
	assert.Contains(t, b.String(), `data-reveal="once"`)

	b.Reset()
	require.NoError(t, h.Div(ItemVariant.Attrs(TriggerLoad, 0)).Render(&b))
	assert.Contains(t, b.String(), `data-motion="load"`)
	assert.NotContains(t, b.String(), "data-reveal")
}

func TestRevealScriptFiresOnce(t *testing.T) {
	script, err := os.ReadFile("static/motion.js")
	require.NoError(t, err)
	src := string(script)

	assert.Contains(t, src, `[data-reveal="once"]`)
	assert.Contains(t, src, "IntersectionObserver")
	assert.Contains(t, src, "observer.unobserve(entry.target)")
	assert.NotContains(t, src, `classList.remove("is-visible")`)
}

func TestStylesheetReadsVariantProperties(t *testing.T) {
	css, err := os.ReadFile("static/site.css")
	require.NoError(t, err)
	for _, prop := range []string{"--from-opacity", "--from-y", "--to-opacity", "--to-y", "--duration", "--delay"} {
		assert.Contains(t, string(css), "var("+prop+")", prop)
	}
	assert.Contains(t, string(css), `[data-motion="load"]`)
	assert.Contains(t, string(css), `.is-visible [data-motion="child"]`)
}
