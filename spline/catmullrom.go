package spline

import "github.com/splinekit/splinekit/vecmath"

// crTangent computes the alpha-aware Catmull-Rom tangent at the middle
// point of a 3-point/3-knot neighborhood. At alpha=0 it collapses to
// the classical centered difference (pNext-pPrev)/2.
func crTangent[S vecmath.Scalar, V vecmath.Vec[S, V]](pPrev, pCur, pNext V, tPrev, tCur, tNext S) V {
	dPrevCur := tCur - tPrev
	dCurNext := tNext - tCur
	dPrevNext := tNext - tPrev

	cPrev := (tCur - tNext) / (dPrevNext * dPrevCur)
	cNext := (tCur - tPrev) / (dPrevNext * dCurNext)
	cCur := -(dPrevCur - dCurNext) / (dCurNext * dPrevCur)

	return pPrev.MultiplyScalar(cPrev).Add(pNext.MultiplyScalar(cNext)).Add(pCur.MultiplyScalar(cCur))
}
