package practice

import practicesvc "github.com/abhisek/drill/internal/practice"

// cardLoadedMsg is sent when the next due card has been fetched. A nil Card
// with no error means nothing is due.
type cardLoadedMsg struct {
	Card *practicesvc.Card
	Due  int
	Err  error
}

// answerRecordedMsg is sent once the answer has been stored.
type answerRecordedMsg struct {
	Result *practicesvc.SubmitResult
	Due    int
	Err    error
}
