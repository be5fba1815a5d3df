package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Boards() BoardRepository
	Cards() CardRepository
	Activities() ActivityRepository
}
