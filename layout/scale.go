package layout

// ScaleResult describes how to stretch a background image over a container.
// Negative margins are the overscan clipped by the container on each side.
type ScaleResult struct {
	Width       int `json:"width"`
	Height      int `json:"height"`
	MarginStart int `json:"margin_start"`
	MarginTop   int `json:"margin_top"`
}

// ComputeScale returns a cover fit of content into the container: the content fills the container
// completely, keeps its aspect ratio and is centered, cropping the overflowing axis.
// Degenerate dimensions yield the container size with no margins.
func ComputeScale(containerH, containerW, contentH, contentW float64) ScaleResult {
	result := ScaleResult{Width: int(containerW), Height: int(containerH)}
	if containerH <= 0 || containerW <= 0 || contentH <= 0 || contentW <= 0 {
		result.Width = max(result.Width, 0)
		result.Height = max(result.Height, 0)
		return result
	}

	screenRatio := containerH / containerW
	contentRatio := contentH / contentW

	// Multiply before dividing so exact fits do not truncate one pixel short.
	if screenRatio > contentRatio {
		result.Width = int(containerH * contentW / contentH)
	} else {
		result.Height = int(containerW * contentH / contentW)
	}

	result.MarginStart = -abs(int(float64(result.Width)-containerW) / 2)
	result.MarginTop = -abs(int(float64(result.Height)-containerH) / 2)
	return result
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
