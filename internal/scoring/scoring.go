package scoring

// PointsPerRemainingGuess is awarded for every wrong guess left unused on a win.
const PointsPerRemainingGuess = 10

// WinPoints returns the points for a win with wrong guesses already spent out of
// maxWrong. The count is the one before the winning guess.
func WinPoints(maxWrong, wrong int) int {
	remaining := maxWrong - wrong
	if remaining < 0 {
		return 0
	}
	return remaining * PointsPerRemainingGuess
}
