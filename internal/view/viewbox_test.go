package view_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gridplot/internal/canvas"
	"github.com/san-kum/gridplot/internal/geom"
	"github.com/san-kum/gridplot/internal/term"
	"github.com/san-kum/gridplot/internal/view"
)

var _ = Describe("ViewBox", func() {
	var (
		c  *canvas.Canvas
		vb *view.ViewBox
	)

	BeforeEach(func() {
		var err error
		c, err = canvas.New(term.NewRecorder(40, 20), 40, 20)
		Expect(err).NotTo(HaveOccurred())
		vb = view.NewViewBox(c, geom.GridPoint{X: 5, Y: 3}, geom.GridPoint{X: 10, Y: 8})
	})

	It("translates by the origin", func() {
		Expect(vb.TranslateToPlot(geom.GridPoint{X: 2, Y: 2})).
			To(Equal(geom.GridPoint{X: 7, Y: 5}))
	})

	It("clamps the translated point into the viewbox extent", func() {
		Expect(vb.TranslateToPlot(geom.GridPoint{X: 30, Y: 30})).
			To(Equal(geom.GridPoint{X: 10, Y: 8}))
	})

	It("is idempotent under repeated clamping", func() {
		once := vb.TranslateToPlot(geom.GridPoint{X: 30, Y: 1})
		Expect(geom.ClampPoint(once, 0, vb.Size.X, 0, vb.Size.Y)).To(Equal(once))
	})
})

var _ = Describe("ScaledViewBox", func() {
	var (
		c   *canvas.Canvas
		svb *view.ScaledViewBox
	)

	BeforeEach(func() {
		var err error
		c, err = canvas.New(term.NewRecorder(40, 20), 40, 20)
		Expect(err).NotTo(HaveOccurred())
		svb, err = view.NewScaledViewBox(c,
			geom.GridPoint{X: 4, Y: 2}, geom.GridPoint{X: 10, Y: 10},
			-1.0, 1.0, 0.0, 100.0)
		Expect(err).NotTo(HaveOccurred())
	})

	It("maps the domain minimum to the viewbox origin", func() {
		Expect(svb.TranslateToPlot(geom.DomainPoint{X: -1.0, Y: 0.0})).
			To(Equal(geom.GridPoint{X: 4, Y: 2}))
	})

	It("maps the domain maximum to origin plus size", func() {
		Expect(svb.TranslateToPlot(geom.DomainPoint{X: 1.0, Y: 100.0})).
			To(Equal(geom.GridPoint{X: 14, Y: 12}))
	})

	It("maps the midpoint to the center cell", func() {
		Expect(svb.TranslateToPlot(geom.DomainPoint{X: 0.0, Y: 50.0})).
			To(Equal(geom.GridPoint{X: 9, Y: 7}))
	})

	It("clamps out-of-domain values to the nearest edge", func() {
		Expect(svb.TranslateToPlot(geom.DomainPoint{X: -5.0, Y: 200.0})).
			To(Equal(geom.GridPoint{X: 4, Y: 12}))
	})

	It("truncates to whole cells", func() {
		// norm 0.55 on a 10-wide box lands in cell 5, not 6
		Expect(svb.TranslateToPlot(geom.DomainPoint{X: 0.1, Y: 0.0}).X).To(Equal(9))
	})

	It("rejects a collapsed x domain", func() {
		_, err := view.NewScaledViewBox(c, geom.GridPoint{}, geom.GridPoint{X: 10, Y: 10},
			3.0, 3.0, 0.0, 1.0)
		Expect(err).To(MatchError(view.ErrDegenerateDomain))
	})

	It("rejects a collapsed y domain", func() {
		_, err := view.NewScaledViewBox(c, geom.GridPoint{}, geom.GridPoint{X: 10, Y: 10},
			0.0, 1.0, 7.5, 7.5)
		Expect(err).To(MatchError(view.ErrDegenerateDomain))
	})
})
