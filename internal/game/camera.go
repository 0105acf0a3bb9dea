package game

import "github.com/go-gl/mathgl/mgl32"

// cameraMatrices returns the projection and view matrices for the current
// framebuffer size. The camera sits above the origin looking into the world
// volume along -z.
func cameraMatrices(fbW, fbH int) (proj, view mgl32.Mat4) {
	aspect := float32(fbW) / float32(fbH)
	proj = mgl32.Perspective(mgl32.DegToRad(FovDeg), aspect, NearPlane, FarPlane)
	view = mgl32.LookAtV(
		mgl32.Vec3{0, CameraY, CameraZ},
		mgl32.Vec3{0, 0, -8},
		mgl32.Vec3{0, 1, 0},
	)
	return proj, view
}
