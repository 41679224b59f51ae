package cpu

import "github.com/tauq-ml/tauq/internal/tensor"

// Same-shape fast paths.

func vectorizedFloat32(dst, a, b []float32, kernel binaryKernel) {
	for i := range dst {
		dst[i] = float32(kernel(float64(a[i]), float64(b[i])))
	}
}

func vectorizedFloat64(dst, a, b []float64, kernel binaryKernel) {
	for i := range dst {
		dst[i] = kernel(a[i], b[i])
	}
}

// Broadcast paths: walk the output shape and map each output index back to
// the (possibly size-1) input dimensions via zero-stride tricks.

func broadcastFloat32(dst, a, b []float32, aShape, bShape, outShape tensor.Shape, kernel binaryKernel) {
	outStrides := outShape.ComputeStrides()
	aStrides := computeBroadcastStridesForShape(aShape, outShape)
	bStrides := computeBroadcastStridesForShape(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		aIdx := computeFlatIndex(i, outStrides, aStrides)
		bIdx := computeFlatIndex(i, outStrides, bStrides)
		dst[i] = float32(kernel(float64(a[aIdx]), float64(b[bIdx])))
	}
}

func broadcastFloat64(dst, a, b []float64, aShape, bShape, outShape tensor.Shape, kernel binaryKernel) {
	outStrides := outShape.ComputeStrides()
	aStrides := computeBroadcastStridesForShape(aShape, outShape)
	bStrides := computeBroadcastStridesForShape(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		aIdx := computeFlatIndex(i, outStrides, aStrides)
		bIdx := computeFlatIndex(i, outStrides, bStrides)
		dst[i] = kernel(a[aIdx], b[bIdx])
	}
}

// computeBroadcastStridesForShape computes strides for broadcasting a shape
// to outShape. Dimensions of size 1 (or missing on the left) get stride 0.
func computeBroadcastStridesForShape(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	inDim := len(inShape)
	offset := outDim - inDim

	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			strides[i] = 0 // Padded dimension
		case inShape[inIdx] == 1:
			strides[i] = 0 // Broadcast dimension
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// computeFlatIndex computes the flat index in the source array for a given
// output index. outStrides are the output shape's strides; inStrides are the
// broadcast-adjusted strides of the input shape.
func computeFlatIndex(outIdx int, outStrides, inStrides []int) int {
	ndim := len(outStrides)
	flatIdx := 0

	for i := 0; i < ndim; i++ {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flatIdx += coord * inStrides[i]
	}

	return flatIdx
}
