package figure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/go-pkgz/lcw/v2"
	log "github.com/go-pkgz/lgr"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/umputun/vizdash/app/enum"
)

// TemplateSource resolves template presets by name.
type TemplateSource interface {
	Get(name string) (Template, error)
	Generation() uint64
}

// RenderOpts defines renderer parameters.
type RenderOpts struct {
	Width     int
	Height    int
	CacheSize int // max number of rendered svg documents kept in cache
}

// Renderer draws figures as SVG in their referenced template and caches the result.
type Renderer struct {
	templates TemplateSource
	cache     lcw.LoadingCache[[]byte]
	width     int
	height    int
}

// NewRenderer makes a renderer for the given template source.
func NewRenderer(ts TemplateSource, opts RenderOpts) (*Renderer, error) {
	if opts.Width <= 0 {
		opts.Width = 960
	}
	if opts.Height <= 0 {
		opts.Height = 540
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = 64
	}
	cache, err := lcw.NewLruCache(lcw.NewOpts[[]byte]().MaxKeys(opts.CacheSize))
	if err != nil {
		return nil, fmt.Errorf("failed to make render cache: %w", err)
	}
	return &Renderer{templates: ts, cache: cache, width: opts.Width, height: opts.Height}, nil
}

// SVG returns the figure rendered in its layout template. Results are cached by figure id,
// figure content, template name and the generation of the template set, so switching back
// to a template already rendered is a cache hit.
func (r *Renderer) SVG(f Figure) ([]byte, error) {
	tpl, err := r.templates.Get(f.Layout.Template)
	if err != nil {
		return nil, fmt.Errorf("figure %s: %w", f.ID, err)
	}
	sum, err := contentHash(f)
	if err != nil {
		return nil, fmt.Errorf("figure %s: %w", f.ID, err)
	}
	key := fmt.Sprintf("%s:%x:%s:%d", f.ID, sum, tpl.Name, r.templates.Generation())
	res, err := r.cache.Get(key, func() ([]byte, error) {
		log.Printf("[DEBUG] render figure %s with template %s", f.ID, tpl.Name)
		return r.render(f, tpl)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render figure %s: %w", f.ID, err)
	}
	return res, nil
}

// Stats returns render cache statistics.
func (r *Renderer) Stats() lcw.CacheStat {
	return r.cache.Stat()
}

// Close releases the render cache.
func (r *Renderer) Close() error {
	return r.cache.Close()
}

// contentHash is fnv-64a of the figure json, data and layout included.
func contentHash(f Figure) (uint64, error) {
	h := fnv.New64a()
	if err := json.NewEncoder(h).Encode(f); err != nil {
		return 0, fmt.Errorf("failed to hash figure: %w", err)
	}
	return h.Sum64(), nil
}

func (r *Renderer) render(f Figure, tpl Template) ([]byte, error) {
	if f.Empty() {
		return r.emptySVG(f, tpl)
	}

	var c chart.Chart
	switch f.Kind {
	case enum.ChartKindScatter:
		c = r.scatterChart(f, tpl)
	case enum.ChartKindBox:
		c = r.boxChart(f, tpl)
	default:
		return nil, fmt.Errorf("unsupported chart kind %q", f.Kind)
	}

	buf := bytes.Buffer{}
	if err := c.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render %s chart: %w", f.Kind, err)
	}
	return buf.Bytes(), nil
}

// baseChart sets canvas, background and axis styling from the template.
func (r *Renderer) baseChart(f Figure, tpl Template) chart.Chart {
	font := hexColor(tpl.FontColor)
	axis := chart.Style{FontColor: font, StrokeColor: hexColor(tpl.AxisColor), FontSize: tpl.fontSize()}
	grid := chart.Style{StrokeColor: hexColor(tpl.GridColor), StrokeWidth: 1}
	return chart.Chart{
		Title:      f.Layout.Title,
		TitleStyle: chart.Style{FontColor: font, FontSize: tpl.fontSize() + 4},
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{
			FillColor: hexColor(tpl.PaperColor),
			Padding:   chart.Box{Top: 30, Left: 20, Right: 20, Bottom: 20},
		},
		Canvas: chart.Style{FillColor: hexColor(tpl.PlotColor)},
		XAxis: chart.XAxis{
			Name:           f.Layout.XAxis.Title,
			NameStyle:      axis,
			Style:          axis,
			GridMajorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           f.Layout.YAxis.Title,
			NameStyle:      axis,
			Style:          axis,
			GridMajorStyle: grid,
		},
		YAxisSecondary: chart.YAxis{Style: chart.Style{Hidden: true}},
	}
}

func (r *Renderer) scatterChart(f Figure, tpl Template) chart.Chart {
	c := r.baseChart(f, tpl)

	var xs, ys []float64
	maxSize := 0.0
	for _, tr := range f.Data {
		xs = append(xs, tr.X...)
		ys = append(ys, tr.Y...)
		for _, s := range tr.Size {
			maxSize = math.Max(maxSize, s)
		}
	}
	sizeMax := f.Layout.SizeMax
	if sizeMax <= 0 {
		sizeMax = DefaultSizeMax
	}

	for _, tr := range f.Data {
		if len(tr.Y) == 0 || len(tr.X) != len(tr.Y) {
			continue
		}
		sizes := tr.Size
		col := tpl.color(tr.Color)
		c.Series = append(c.Series, chart.ContinuousSeries{
			Name:    tr.Name,
			XValues: tr.X,
			YValues: tr.Y,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				StrokeColor: col,
				DotColor:    col.WithAlpha(180),
				DotWidthProvider: func(_, _ chart.Range, index int, _, _ float64) float64 {
					if index >= len(sizes) {
						return 3
					}
					return bubbleRadius(sizes[index], maxSize, sizeMax)
				},
			},
		})
	}

	xmin, xmax := bounds(xs)
	ymin, ymax := bounds(ys)
	c.XAxis.Range = &chart.ContinuousRange{Min: math.Max(0, xmin-(xmax-xmin)*0.05), Max: xmax + (xmax-xmin)*0.05}
	c.YAxis.Range = &chart.ContinuousRange{Min: ymin - 5, Max: ymax + 5}
	c.Elements = []chart.Renderable{chart.Legend(&c, chart.Style{FontColor: hexColor(tpl.FontColor),
		FillColor: hexColor(tpl.PaperColor), StrokeColor: hexColor(tpl.GridColor)})}
	return c
}

func (r *Renderer) boxChart(f Figure, tpl Template) chart.Chart {
	c := r.baseChart(f, tpl)

	// unlabeled ticks at both ends, go-chart takes the x range from ticks
	var ys []float64
	ticks := make([]chart.Tick, 0, len(f.Data)+2)
	ticks = append(ticks, chart.Tick{Value: 0.5})
	for i, tr := range f.Data {
		pos := float64(i + 1)
		ticks = append(ticks, chart.Tick{Value: pos, Label: tr.Name})
		stats, ok := newBoxStats(tr.Y)
		if !ok {
			continue
		}
		ys = append(ys, tr.Y...)
		col := tpl.color(tr.Color)
		c.Series = append(c.Series, boxSeries{
			name:  tr.Name,
			x:     pos,
			stats: stats,
			style: chart.Style{StrokeColor: col, FillColor: col.WithAlpha(90)},
		})
	}

	ticks = append(ticks, chart.Tick{Value: float64(len(f.Data)) + 0.5})

	ymin, ymax := bounds(ys)
	c.XAxis.Ticks = ticks
	c.XAxis.Range = &chart.ContinuousRange{Min: 0.5, Max: float64(len(f.Data)) + 0.5}
	c.YAxis.Range = &chart.ContinuousRange{Min: ymin - 5, Max: ymax + 5}
	return c
}

// emptySVG draws the themed placeholder for a figure without data points.
func (r *Renderer) emptySVG(f Figure, tpl Template) ([]byte, error) {
	rnd, err := chart.SVG(r.width, r.height)
	if err != nil {
		return nil, fmt.Errorf("failed to make svg renderer: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("failed to get default font: %w", err)
	}

	rnd.SetFillColor(hexColor(tpl.PaperColor))
	rnd.SetStrokeColor(hexColor(tpl.PaperColor))
	rnd.SetStrokeWidth(0)
	rnd.MoveTo(0, 0)
	rnd.LineTo(r.width, 0)
	rnd.LineTo(r.width, r.height)
	rnd.LineTo(0, r.height)
	rnd.Close()
	rnd.FillStroke()

	msg := "no data"
	if f.Layout.Title != "" {
		msg = f.Layout.Title + ": no data"
	}
	rnd.SetFont(font)
	rnd.SetFontColor(hexColor(tpl.FontColor))
	rnd.SetFontSize(tpl.fontSize() + 4)
	box := rnd.MeasureText(msg)
	rnd.Text(msg, (r.width-box.Width())/2, r.height/2)

	buf := bytes.Buffer{}
	if err := rnd.Save(&buf); err != nil {
		return nil, fmt.Errorf("failed to save svg: %w", err)
	}
	return buf.Bytes(), nil
}

// bubbleRadius scales marker area with the value, the largest value gets sizeMax diameter.
func bubbleRadius(v, maxV, sizeMax float64) float64 {
	if maxV <= 0 || v <= 0 {
		return 2
	}
	return math.Max(2, sizeMax/2*math.Sqrt(v/maxV))
}

// bounds returns min and max of values, widened to a non-zero span.
func bounds(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 1
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return lo, hi
}

func hexColor(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}

func (t Template) color(idx int) drawing.Color {
	if len(t.Colorway) == 0 {
		return chart.ColorBlue
	}
	return hexColor(t.Colorway[idx%len(t.Colorway)])
}

func (t Template) fontSize() float64 {
	if t.FontSize <= 0 {
		return 12
	}
	return t.FontSize
}
