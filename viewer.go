package main

import (
	"fmt"
	"iter"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/fogleman/ease"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oliverbestmann/hullchains/chains"
	"github.com/oliverbestmann/hullchains/config"
	"github.com/oliverbestmann/hullchains/geom"
	"github.com/oliverbestmann/hullchains/hull"
	"github.com/oliverbestmann/hullchains/pointgen"
	"github.com/oliverbestmann/hullchains/report"
	"github.com/oliverbestmann/hullchains/tween"
	. "github.com/quasilyte/gmath"
)

// distance in pixels within which a point counts as hovered
const hoverDistance = 12.0

type ViewerOptions struct {
	Config config.ViewerConfig
	Logger *slog.Logger

	// Bounds is shown while there is nothing else to show
	Bounds Rect

	Hull      *hull.ConvexHull
	Script    []hull.Operation
	Generator *pointgen.Generator

	// Graph switches the viewer to chain mode
	Graph     *chains.Graph
	Localizer *chains.Localizer
	Query     geom.Point
}

// Viewer implements ebiten.Game. It shows either a dynamic hull that can
// be edited with the mouse, or the chains of a graph.
type Viewer struct {
	cfg    config.ViewerConfig
	logger *slog.Logger

	screenWidth  int
	screenHeight int

	toScreen ebiten.GeoM
	toWorld  ebiten.GeoM

	// camera position in world coordinates and pixels per world unit
	center Vec
	zoom   float64
	tweens tween.Tweens

	now   time.Time
	debug bool

	cursorScreen Vec
	cursorWorld  Vec

	seq       geom.Sequence
	hull      *hull.ConvexHull
	script    []hull.Operation
	generator *pointgen.Generator
	fades     tween.Fades[Vec]
	hovered   *geom.Point

	graph     *chains.Graph
	localizer *chains.Localizer
	query     geom.Point

	queryBracket  chains.Bracket
	cursorBracket chains.Bracket
}

func NewViewer(opts ViewerOptions) *Viewer {
	v := &Viewer{
		cfg:          opts.Config,
		logger:       opts.Logger,
		screenWidth:  opts.Config.Width,
		screenHeight: opts.Config.Height,
		hull:         opts.Hull,
		script:       opts.Script,
		generator:    opts.Generator,
		graph:        opts.Graph,
		localizer:    opts.Localizer,
		query:        opts.Query,
		now:          time.Now(),
		fades: tween.Fades[Vec]{
			Duration: opts.Config.FadeDuration,
			EaseIn:   ease.OutBack,
			EaseOut:  ease.InQuad,
		},
	}

	if v.logger == nil {
		v.logger = slog.Default()
	}

	if v.hull == nil {
		v.hull = hull.New(hull.WithLogger(v.logger))
	}

	for _, p := range v.hull.Points() {
		v.fades.Show(p.Vec)
	}

	if v.localizer != nil {
		v.queryBracket = v.localizer.Locate(v.query)
	}

	// start with the bounds in view, then move to the content
	v.center, v.zoom = v.fitRect(opts.Bounds)
	v.fit()

	return v
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	v.screenWidth = outsideWidth
	v.screenHeight = outsideHeight
	return outsideWidth, outsideHeight
}

func (v *Viewer) Update() error {
	now := time.Now()
	dt := now.Sub(v.now)
	v.now = now

	v.tweens.Update(dt)
	v.fades.Update(dt)

	v.updateTransform()

	v.cursorScreen = CursorPosition()
	v.cursorWorld = TransformVec(v.toWorld, v.cursorScreen)

	v.Input()

	return nil
}

func (v *Viewer) Input() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		v.debug = !v.debug
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		v.fit()
	}

	if v.graph != nil {
		v.inputChains()
		return
	}

	v.hovered = v.nearestPoint()

	if pos, ok := Clicked(ebiten.MouseButtonLeft); ok {
		world := TransformVec(v.toWorld, pos)
		v.apply(hull.Insert(v.seq.Assign(geom.Point{Vec: world})))
	}

	if _, ok := Clicked(ebiten.MouseButtonRight); ok && v.hovered != nil {
		v.apply(hull.Delete(*v.hovered))
		v.hovered = nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && len(v.script) > 0 {
		v.apply(v.script[0])
		v.script = v.script[1:]
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		for _, op := range v.script {
			v.apply(op)
		}

		v.script = nil
		v.fit()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyG) && v.generator != nil {
		for _, p := range v.generator.Points(v.cfg.Batch) {
			v.apply(hull.Insert(p))
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		for _, p := range v.hull.Points() {
			v.apply(hull.Delete(p))
		}
	}
}

func (v *Viewer) inputChains() {
	v.cursorBracket = v.localizer.Locate(geom.Point{Vec: v.cursorWorld})

	if pos, ok := Clicked(ebiten.MouseButtonLeft); ok {
		v.query = geom.Point{Vec: TransformVec(v.toWorld, pos)}
		v.queryBracket = v.localizer.Locate(v.query)

		v.logger.Info("Query point moved",
			slog.String("query", v.query.String()),
			slog.String("bracket", v.queryBracket.String()),
		)
	}
}

func (v *Viewer) apply(op hull.Operation) {
	switch op.Kind {
	case hull.OpInsert:
		if v.hull.Insert(op.Point) {
			v.fades.Show(op.Point.Vec)
		}

	case hull.OpDelete:
		if v.hull.Delete(op.Point) {
			v.fades.Hide(op.Point.Vec)
		}
	}
}

// nearestPoint returns the point closest to the cursor, if it is near enough.
func (v *Viewer) nearestPoint() *geom.Point {
	points := v.hull.Points()
	if len(points) == 0 {
		return nil
	}

	nearest := MaxOf(slices.Values(points), func(p geom.Point) float64 {
		return -v.cursorWorld.DistanceSquaredTo(p.Vec)
	})

	if TransformVec(v.toScreen, nearest.Vec).DistanceTo(v.cursorScreen) > hoverDistance {
		return nil
	}

	return &nearest
}

// fit moves the camera so that all content is visible.
func (v *Viewer) fit() {
	points := v.contentPoints()
	if len(points) == 0 {
		return
	}

	bounds := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		bounds.Min = Vec{X: min(bounds.Min.X, p.X), Y: min(bounds.Min.Y, p.Y)}
		bounds.Max = Vec{X: max(bounds.Max.X, p.X), Y: max(bounds.Max.Y, p.Y)}
	}

	center, zoom := v.fitRect(bounds)

	v.tweens.Clear()

	v.tweens.Add(&tween.Simple{
		Duration: v.cfg.ZoomDuration,
		Target:   tween.LerpVec(&v.center, v.center, center),
		Ease:     ease.InOutCubic,
	})

	v.tweens.Add(&tween.Simple{
		Duration: v.cfg.ZoomDuration,
		Target:   tween.LerpValue(&v.zoom, v.zoom, zoom),
		Ease:     ease.InOutCubic,
	})
}

// fitRect returns the camera that shows the rect with some margin. A rect
// without area keeps the current zoom.
func (v *Viewer) fitRect(rect Rect) (Vec, float64) {
	const margin = 1.2

	center := Vec{
		X: (rect.Min.X + rect.Max.X) / 2,
		Y: (rect.Min.Y + rect.Max.Y) / 2,
	}

	width := (rect.Max.X - rect.Min.X) * margin
	height := (rect.Max.Y - rect.Min.Y) * margin

	zoom := v.zoom
	if width > 0 || height > 0 {
		zoom = math.Min(
			float64(v.screenWidth)/math.Max(width, 1e-9),
			float64(v.screenHeight)/math.Max(height, 1e-9),
		)
	}

	if zoom <= 0 {
		zoom = 1
	}

	return center, zoom
}

func (v *Viewer) contentPoints() []Vec {
	var points []Vec

	if v.graph != nil {
		for _, vertex := range v.graph.Vertices() {
			points = append(points, vertex.Vec)
		}

		return append(points, v.query.Vec)
	}

	for _, p := range v.hull.Points() {
		points = append(points, p.Vec)
	}

	return points
}

func (v *Viewer) updateTransform() {
	v.toScreen = ebiten.GeoM{}
	v.toScreen.Translate(-v.center.X, -v.center.Y)

	// world y points up
	v.toScreen.Scale(v.zoom, -v.zoom)
	v.toScreen.Translate(float64(v.screenWidth)/2, float64(v.screenHeight)/2)

	v.toWorld = v.toScreen
	v.toWorld.Invert()
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)

	if v.graph != nil {
		v.drawChains(screen)
	} else {
		v.drawHull(screen)
	}

	v.drawHUD(screen)
}

func (v *Viewer) drawHull(screen *ebiten.Image) {
	polygon := vecsOf(v.hull.Polygon())
	FillPolygon(screen, polygon, v.toScreen, HullFillColor)

	StrokePolyline(screen, vecsOf(v.hull.Upper()), v.toScreen, 2, UpperHullColor, false)
	StrokePolyline(screen, vecsOf(v.hull.Lower()), v.toScreen, 2, LowerHullColor, false)

	onHull := map[Vec]bool{}
	for _, p := range polygon {
		onHull[p] = true
	}

	for _, pos := range v.fades.Visible() {
		pointColor := PointColorIdle

		switch {
		case v.hovered != nil && v.hovered.Vec == pos:
			pointColor = PointColorHover
		case onHull[pos]:
			pointColor = PointColorHull
		}

		radius := v.cfg.PointRadius * v.fades.Visibility(pos)
		DrawPoint(screen, TransformVec(v.toScreen, pos), radius, pointColor)
	}
}

func (v *Viewer) drawChains(screen *ebiten.Image) {
	for _, edge := range v.graph.Edges() {
		line := []Vec{edge[0].Vec, edge[1].Vec}
		StrokePolyline(screen, line, v.toScreen, 1, EdgeColor, false)
	}

	found := v.localizer.Chains()

	for idx, chain := range found {
		width := float32(2)
		if idx == v.queryBracket.Left || idx == v.queryBracket.Right {
			width = 4
		}

		// shift the chains apart, so shared edges stay visible
		tr := v.toScreen
		tr.Translate(2*float64(idx)-float64(len(found)), 0)

		chainColor := ChainColors[idx%len(ChainColors)]
		StrokePolyline(screen, vecsOf(chain.Points()), tr, width, chainColor, false)
	}

	for _, vertex := range v.graph.Vertices() {
		DrawPoint(screen, TransformVec(v.toScreen, vertex.Vec), v.cfg.PointRadius, PointColorIdle)
	}

	DrawFillCircle(screen, TransformVec(v.toScreen, v.query.Vec), v.cfg.PointRadius, QueryColor)
}

func (v *Viewer) drawHUD(screen *ebiten.Image) {
	var texts []Text

	line := func(format string, args ...any) {
		texts = append(texts, Text{Text: fmt.Sprintf(format, args...), Face: Font14, Color: HudTextColor})
	}

	if v.graph != nil {
		line("vertices %d, chains %d", v.graph.Len(), len(v.localizer.Chains()))
		line("query %s lies %s", v.query, report.DescribeBracket(v.queryBracket))
		line("cursor lies %s", report.DescribeBracket(v.cursorBracket))
		line("left click: move query, f: fit, d: debug")
	} else {
		line("points %d, upper %d, lower %d, tree height %d",
			v.hull.Len(), len(v.hull.Upper()), len(v.hull.Lower()), v.hull.Height())

		if len(v.script) > 0 {
			line("%d scripted operations left, next: %s", len(v.script), v.script[0])
		}

		line("left click: insert, right click: delete, space: step, a: apply all")
		line("g: generate, c: clear, f: fit, d: debug")
	}

	if v.debug {
		line("%1.1f fps, cursor (%1.2f; %1.2f), zoom %1.3f",
			ebiten.ActualFPS(), v.cursorWorld.X, v.cursorWorld.Y, v.zoom)
	}

	DrawPanel(screen, Vec{X: 16, Y: 16}, texts)
}

func vecsOf(points []geom.Point) []Vec {
	vecs := make([]Vec, len(points))
	for idx, p := range points {
		vecs[idx] = p.Vec
	}

	return vecs
}

func MaxOf[T any](values iter.Seq[T], scoreOf func(value T) float64) T {
	var bestScore = math.Inf(-1)
	var bestValue T

	for value := range values {
		score := scoreOf(value)
		if score > bestScore {
			bestScore = score
			bestValue = value
		}
	}

	return bestValue
}
