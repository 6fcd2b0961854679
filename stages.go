package main

// gallows holds one picture per wrong guess, indexed by Snapshot.Stage.
var gallows = [...]string{
	`
   --------
   |      |
   |
   |
   |
   |
   -`,
	`
   --------
   |      |
   |      O
   |
   |
   |
   -`,
	`
   --------
   |      |
   |      O
   |      |
   |
   |
   -`,
	`
   --------
   |      |
   |      O
   |     \|
   |
   |
   -`,
	`
   --------
   |      |
   |      O
   |     \|/
   |
   |
   -`,
	`
   --------
   |      |
   |      O
   |     \|/
   |      |
   |
   -`,
	`
   --------
   |      |
   |      O
   |     \|/
   |      |
   |     / \
   -
GAME OVER!`,
}

func gallowsStage(stage int) string {
	if stage < 0 {
		stage = 0
	}
	if stage >= len(gallows) {
		stage = len(gallows) - 1
	}
	return gallows[stage]
}
