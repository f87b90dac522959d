package domain

// to iterate thru layers: handler -> service -> storage
type NewThread struct {
	Title string
	Body  string
	Owner UserId
}

func ParseNewThread(p Payload) (NewThread, error) {
	v, err := requireEntityFields(p, "NEW_THREAD", "title", "body", "owner")
	if err != nil {
		return NewThread{}, err
	}
	return NewThread{Title: v["title"], Body: v["body"], Owner: v["owner"]}, nil
}

type AddedThread struct {
	Id    ThreadId `json:"id"`
	Title string   `json:"title"`
	Owner UserId   `json:"owner"`
}

func ParseAddedThread(p Payload) (AddedThread, error) {
	v, err := requireEntityFields(p, "ADDED_THREAD", "id", "title", "owner")
	if err != nil {
		return AddedThread{}, err
	}
	return AddedThread{Id: v["id"], Title: v["title"], Owner: v["owner"]}, nil
}

// ThreadDetailRequest is the validated input of the thread detail read.
type ThreadDetailRequest struct {
	ThreadId ThreadId
}

func ParseThreadDetail(p Payload) (ThreadDetailRequest, error) {
	v, err := requireEntityFields(p, "THREAD_DETAIL", "threadId")
	if err != nil {
		return ThreadDetailRequest{}, err
	}
	return ThreadDetailRequest{ThreadId: v["threadId"]}, nil
}

// ThreadRow is the thread header as stored, joined with the owner's username.
type ThreadRow struct {
	Id       ThreadId `json:"id"`
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Date     string   `json:"date"`
	Username string   `json:"username"`
}

// ThreadDetail is the rendered thread with its comments and their replies.
type ThreadDetail struct {
	ThreadRow
	Comments []CommentView `json:"comments"`
}
