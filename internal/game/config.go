package game

// Window defaults.
const (
	WindowWidth  = 960
	WindowHeight = 720
	WindowTitle  = "Cube Storm"
)

// Camera placement. The world sits in front of the origin along -z, so the
// camera hovers slightly above and behind it looking down the axis.
const (
	FovDeg    = 45.0
	NearPlane = 0.1
	FarPlane  = 120.0
	CameraY   = 1.5
	CameraZ   = 4.0
)

// CubeScale is the mesh half-extent. The simulation's overlap threshold is
// tuned to cubes of this visual size.
const CubeScale = 0.5

// Audio.
const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
	SfxVolume    = 0.45
)
