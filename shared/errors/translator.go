package errors

import "errors"

// Suffixes of domain error codes. Entities use the first pair, use cases
// that validate their own payload use the second.
const (
	NotContainNeededProperty            = "NOT_CONTAIN_NEEDED_PROPERTY"
	NotMeetDataTypeSpecification        = "NOT_MEET_DATA_TYPE_SPECIFICATION"
	NotContainRequiredAttributes        = "NOT_CONTAIN_REQUIRED_ATTRIBUTES"
	PayloadNotMeetDataTypeSpecification = "PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION"
)

// Codes that reach the client. ADDED_* codes guard rows read back from
// storage and stay internal errors.
var translations = map[string]string{
	"NEW_THREAD." + NotContainNeededProperty:     "tidak dapat membuat thread harus mengirimkan title dan body",
	"NEW_THREAD." + NotMeetDataTypeSpecification: "tidak dapat membuat thread title dan body harus string",

	"NEW_THREAD_COMMENT." + NotContainNeededProperty:     "tidak dapat membuat comment harus mengirimkan content",
	"NEW_THREAD_COMMENT." + NotMeetDataTypeSpecification: "tidak dapat membuat comment content harus string",

	"NEW_COMMENT_REPLY." + NotContainNeededProperty:     "tidak dapat membuat reply harus mengirimkan content",
	"NEW_COMMENT_REPLY." + NotMeetDataTypeSpecification: "tidak dapat membuat reply content harus string",

	"THREAD_DETAIL." + NotContainNeededProperty:             "tidak dapat menampilkan thread harus mengirimkan threadId",
	"THREAD_DETAIL." + NotMeetDataTypeSpecification:         "tidak dapat menampilkan thread threadId harus string",
	"THREAD_COMMENT_DETAIL." + NotContainNeededProperty:     "tidak dapat menampilkan comment harus mengirimkan threadId",
	"THREAD_COMMENT_DETAIL." + NotMeetDataTypeSpecification: "tidak dapat menampilkan comment threadId harus string",

	"DELETE_THREAD_COMMENT_USE_CASE." + NotContainRequiredAttributes:        "tidak dapat menghapus comment karena properti yang dibutuhkan tidak ada",
	"DELETE_THREAD_COMMENT_USE_CASE." + PayloadNotMeetDataTypeSpecification: "tidak dapat menghapus comment karena tipe data tidak sesuai",

	"DELETE_COMMENT_REPLY_USE_CASE." + NotContainRequiredAttributes:        "tidak dapat menghapus reply karena properti yang dibutuhkan tidak ada",
	"DELETE_COMMENT_REPLY_USE_CASE." + PayloadNotMeetDataTypeSpecification: "tidak dapat menghapus reply karena tipe data tidak sesuai",

	"LIKE_DISLIKE_COMMENT_USE_CASE." + NotContainRequiredAttributes:        "tidak dapat menyukai comment karena properti yang dibutuhkan tidak ada",
	"LIKE_DISLIKE_COMMENT_USE_CASE." + PayloadNotMeetDataTypeSpecification: "tidak dapat menyukai comment karena tipe data tidak sesuai",
}

// Translate turns a known DomainError into a client error with a readable
// message. Anything else is returned unchanged.
func Translate(err error) error {
	var de *DomainError
	if !errors.As(err, &de) {
		return err
	}
	if msg, ok := translations[de.Code]; ok {
		return NewClientError(msg)
	}
	return err
}
