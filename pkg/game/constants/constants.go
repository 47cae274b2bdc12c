package constants

const (
	// ScreenWidth is the width of the playfield in pixels
	ScreenWidth int = 640
	// ScreenHeight is the height of the playfield in pixels
	ScreenHeight int = 480

	// PaddleWidth is the width of both paddles
	PaddleWidth int = 10
	// PaddleHeight is the height of both paddles
	PaddleHeight int = 60
	// PaddleSpeed is how far a paddle moves per frame
	PaddleSpeed int = 5
	// LeftPaddleX is the fixed x-coordinate of the human paddle
	LeftPaddleX int = 20
	// RightPaddleX is the fixed x-coordinate of the AI paddle
	RightPaddleX int = ScreenWidth - 30
	// PaddleStartingY vertically centers a paddle
	PaddleStartingY int = ScreenHeight/2 - PaddleHeight/2

	// BallSize is the edge length of the square ball
	BallSize int = 16
	// BallSpeed is the magnitude of each velocity component on serve
	BallSpeed int = 3
	// BallStartingX is where the ball respawns
	BallStartingX int = ScreenWidth / 2
	// BallStartingY is where the ball respawns
	BallStartingY int = ScreenHeight / 2
	// MaxBallSpeedY caps the vertical speed a paddle deflection can produce
	MaxBallSpeedY int = 2 * BallSpeed

	// DeflectionDivisor maps a paddle hit offset to a vertical speed
	DeflectionDivisor int = PaddleHeight / 4

	// TitleBallStartingX is where the decorative title ball starts
	TitleBallStartingX int = 100
	// TitleBallStartingY is where the decorative title ball starts
	TitleBallStartingY int = 100
	// TitleBallSpeed is the per-axis speed of the decorative title ball
	TitleBallSpeed int = 2

	// WinningScore ends the match when either player reaches it
	WinningScore int = 5
)
