package overlay

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/mgpai22/cueview/internal/caption"
	"github.com/mgpai22/cueview/internal/player"
)

// class names understood by the caption stylesheet
const (
	PlayerClass    = "vjs-dotsub-captions"
	ContainerClass = "vjs-caption-containter"
	CaptionClass   = "vjs-caption"
	TextClass      = "vjs-text"
)

// Overlay is an in-memory rendering layer. It keeps the caption containers as
// an element tree shaped like the player DOM, one container per position key
// with one caption element per cue.
type Overlay struct {
	doc        *etree.Document
	root       *etree.Element
	containers []*etree.Element
	log        *zap.Logger

	direction caption.Direction
	renders   int
	clears    int
	destroyed bool
}

var _ player.Sink = (*Overlay)(nil)

func New(log *zap.Logger) *Overlay {
	if log == nil {
		log = zap.NewNop()
	}

	doc := etree.NewDocument()
	root := doc.CreateElement("div")
	root.CreateAttr("class", PlayerClass)

	return &Overlay{
		doc:       doc,
		root:      root,
		log:       log,
		direction: caption.DirectionLTR,
	}
}

// Render replaces the containers on screen with the ones in f.
func (o *Overlay) Render(f player.Frame) {
	if o.destroyed {
		return
	}
	o.removeContainers()
	o.renders++
	if f.Direction != "" {
		o.direction = f.Direction
	}

	for _, c := range f.Containers {
		el := o.root.CreateElement("div")
		el.CreateAttr("class", ContainerClass)
		el.CreateAttr("dir", string(o.direction))
		el.CreateAttr("data-position", c.Key.String())
		el.CreateAttr("style", layoutStyle(c.Layout))

		for _, entry := range c.Entries {
			wrapper := el.CreateElement("div")
			wrapper.CreateAttr("class", CaptionClass)
			text := wrapper.CreateElement("div")
			text.CreateAttr("class", TextClass)
			o.setMarkup(text, entry)
		}

		o.containers = append(o.containers, el)
	}
}

// Clear removes every container.
func (o *Overlay) Clear() {
	if o.destroyed {
		return
	}
	o.clears++
	o.removeContainers()
}

// SetDirection rewrites the dir attribute of every container on screen and
// of the ones rendered later.
func (o *Overlay) SetDirection(dir caption.Direction) {
	if o.destroyed {
		return
	}
	o.direction = dir
	for _, el := range o.containers {
		el.CreateAttr("dir", string(dir))
	}
}

// Destroy tears the overlay down, later calls do nothing.
func (o *Overlay) Destroy() {
	o.removeContainers()
	o.destroyed = true
}

// Containers is the number of containers on screen.
func (o *Overlay) Containers() int {
	return len(o.containers)
}

// Entries is the number of captions on screen across all containers.
func (o *Overlay) Entries() int {
	return len(o.root.FindElements("./div/div[@class='" + CaptionClass + "']"))
}

// CountTag counts elements named tag inside rendered caption text.
func (o *Overlay) CountTag(tag string) int {
	return len(o.root.FindElements(".//div[@class='" + TextClass + "']//" + tag))
}

// Direction is the direction applied to containers.
func (o *Overlay) Direction() caption.Direction {
	return o.direction
}

// Renders and Clears count the calls that changed the screen.
func (o *Overlay) Renders() int { return o.renders }
func (o *Overlay) Clears() int  { return o.clears }

// HTML serializes the player element and its containers.
func (o *Overlay) HTML() (string, error) {
	return o.doc.WriteToString()
}

func (o *Overlay) removeContainers() {
	for _, el := range o.containers {
		o.root.RemoveChild(el)
	}
	o.containers = nil
}

// context element caption markup is parsed in, as if assigned to innerHTML
var textContext = &html.Node{
	Type:     html.ElementNode,
	Data:     "div",
	DataAtom: atom.Div,
}

// setMarkup parses entry markup into el the way a browser does, so unbalanced
// or interleaved style tags still end up as elements.
func (o *Overlay) setMarkup(el *etree.Element, entry player.Entry) {
	nodes, err := html.ParseFragment(strings.NewReader(entry.Markup), textContext)
	if err != nil {
		o.log.Debug("Keeping caption as plain text",
			zap.String("markup", entry.Markup),
			zap.Error(err),
		)
		el.SetText(entry.Cue.Content)
		return
	}

	for _, n := range nodes {
		appendNode(el, n)
	}
}

func appendNode(parent *etree.Element, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		parent.CreateText(n.Data)
	case html.ElementNode:
		el := parent.CreateElement(n.Data)
		for _, a := range n.Attr {
			el.CreateAttr(a.Key, a.Val)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			appendNode(el, c)
		}
	}
}

func layoutStyle(l caption.Layout) string {
	offset := strconv.FormatFloat(l.Vertical.OffsetPx, 'f', -1, 64)
	return "text-align: " + l.Align + "; " + string(l.Vertical.Edge) + ": " + offset + "px;"
}
