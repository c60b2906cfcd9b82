package parameter

// Orbit camera
const (
	CameraDefaultDistance float32 = 14
	CameraMinDistance     float32 = 4
	CameraMaxDistance     float32 = 40
	CameraDefaultYaw      float32 = 45
	CameraDefaultPitch    float32 = 50

	// CameraZoomStep is distance change per scroll unit
	CameraZoomStep float32 = 1

	// CameraOrbitStep is yaw change per tick while an orbit key is held, degrees
	CameraOrbitStep float32 = 3

	// CameraViewHalfHeight sizes the orthographic volume per unit of orbit distance
	CameraViewHalfHeight float32 = 0.6
	CameraNear           float32 = 0.1
	CameraFar            float32 = 200
)
