package roamterrain

import "fmt"

// GetHeightFunc, DistToCameraFunc, SphereInFrustumFunc, ClassifySphereFunc
// and SendVertexFunc name the four (plus one optional) callback shapes
// the engine needs a host to supply. GetHeightFunc is declared in
// vartree.go; the rest are declared here, next to the struct that
// groups them.
type (
	DistToCameraFunc    func(x, y float64) float64
	SphereInFrustumFunc func(x, y, radius float64) bool
	ClassifySphereFunc  func(x, y, radius float64) FrustumClass
	SendVertexFunc      func(x, y int)
)

// Callbacks groups the host-supplied query functions the split-merge
// engine drives every frame. GetHeight, DistToCamera, SphereInFrustum
// and SendVertex are required; ClassifySphere is an optional refinement
// (see frustum.go) that lets a caller with a real frustum skip redundant
// subtree tests.
type Callbacks struct {
	GetHeight       GetHeightFunc
	DistToCamera    DistToCameraFunc
	SphereInFrustum SphereInFrustumFunc
	ClassifySphere  ClassifySphereFunc
	SendVertex      SendVertexFunc
}

func (cb Callbacks) validate() error {
	if cb.GetHeight == nil || cb.DistToCamera == nil || cb.SphereInFrustum == nil || cb.SendVertex == nil {
		return ErrMissingCallback
	}
	return nil
}

// Engine is the top-level terrain LOD tessellator: it owns the
// precomputed variance/hypotenuse tables and the quality controller,
// and drives the mesh state housed in its BinTriPool through Update
// (split-merge refinement) and Draw (vertex emission). One Engine
// corresponds to one heightmap/pool pairing; callers that need several
// independent terrains construct one Engine each.
type Engine struct {
	cfg  Config
	pool *BinTriPool
	size int

	mesh    *meshState
	vt      *varianceTree
	hypoLen []float64
	quality qualityController

	cb          Callbacks
	initialized bool

	lastLeafCount int

	// Debug, when true, makes Init and Update each log a summary line
	// to os.Stderr (see debug.go) instead of pulling in a
	// logging library for what is, in this package, a handful of
	// occasional trace lines.
	Debug bool
}

// New constructs an Engine for a size x size grid (size must be a power
// of two, at least 2) backed by pool. pool's capacity is the engine's
// hard ceiling on simultaneously live nodes; Config.PoolCapacity is
// advisory sizing guidance for the caller building pool, not re-checked
// against it here, since the pool is the authority on its own capacity.
func New(size int, pool *BinTriPool, cfg Config) (*Engine, error) {
	if size < 2 || size&(size-1) != 0 {
		return nil, ErrInvalidSize
	}
	if pool == nil {
		return nil, fmt.Errorf("%w: pool must not be nil", ErrInvalidConfig)
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:  cfg,
		pool: pool,
		size: size,
		quality: qualityController{
			constant: cfg.InitialQuality,
			gain:     cfg.QualityGain,
			deadBand: cfg.QualityDeadBand,
			target:   cfg.TargetPolygonCount,
		},
	}, nil
}

// RegisterCallbacks sets the callbacks Init/Update/Draw will use. Must
// be called, with every required field populated, before Init.
func (e *Engine) RegisterCallbacks(cb Callbacks) {
	e.cb = cb
}

// Init (re)builds the variance tree and hypotenuse table from the
// currently registered GetHeight callback, resets the pool, and
// allocates the two root triangles. Returns ErrMissingCallback if a
// required callback has not been registered.
func (e *Engine) Init() error {
	if err := e.cb.validate(); err != nil {
		return err
	}
	e.vt = buildVarianceTree(e.size, e.cfg.MaxLevels, e.cb.GetHeight)
	e.hypoLen = buildHypoLenTable(e.size, e.cfg.MaxLevels)

	e.pool.Reset()
	mesh, err := initMeshState(e.pool, e.size)
	if err != nil {
		return err
	}
	e.mesh = mesh
	e.initialized = true
	e.lastLeafCount = 2
	e.debugf("init: size=%d maxLevels=%d capacity=%d", e.size, e.cfg.MaxLevels, e.pool.Capacity())
	return nil
}

// Update runs one pass of recursive split-merge refinement over both
// roots, then feeds the resulting live leaf count to the quality
// controller. Returns whether the mesh topology changed (any split or
// merge occurred this frame) so a caller can skip re-uploading geometry
// on an unchanged frame.
func (e *Engine) Update() (bool, error) {
	if !e.initialized {
		return false, ErrNotInitialized
	}

	ctx := &tesselateContext{
		pool:      e.pool,
		vt:        e.vt,
		hypoLen:   e.hypoLen,
		cb:        e.cb,
		quality:   e.quality.constant,
		maxLevel:  e.cfg.MaxLevels,
		capacity:  e.pool.Capacity(),
		satCutoff: e.cfg.SaturationCutoff,
	}
	ctx.recurse(e.mesh.rootNW, 0, false)
	ctx.recurse(e.mesh.rootSE, 1, false)

	leafCount := countLeaves(e.pool, e.mesh.rootNW) + countLeaves(e.pool, e.mesh.rootSE)
	e.lastLeafCount = leafCount
	e.quality.adjust(leafCount)

	e.debugf("update: changed=%v leaves=%d quality=%.6f live=%d/%d",
		ctx.changed, leafCount, e.quality.constant, e.pool.LiveCount(), e.pool.Capacity())
	return ctx.changed, nil
}

// Draw walks the current mesh in pre-order and emits every leaf
// triangle's vertices via the registered SendVertex callback. It
// performs no culling of its own; frustum culling only suppresses
// refinement during Update, not emission during Draw.
func (e *Engine) Draw() error {
	if !e.initialized {
		return ErrNotInitialized
	}
	walkPreOrder(e.pool, e.mesh.rootNW, e.emitLeaf)
	walkPreOrder(e.pool, e.mesh.rootSE, e.emitLeaf)
	return nil
}

// LeafCount returns the live triangle count observed during the most
// recent Update (or 2, the two untouched roots, before the first Update
// following Init).
func (e *Engine) LeafCount() int {
	return e.lastLeafCount
}

// QualityConstant returns the quality controller's current multiplier,
// useful for tests and diagnostics that want to watch the feedback loop
// converge.
func (e *Engine) QualityConstant() float64 {
	return e.quality.constant
}

// Size returns the grid size the engine was constructed with.
func (e *Engine) Size() int {
	return e.size
}
