package usecase

import (
	"context"
	"sort"
	"sync"

	"lecturehub/internal/domain"
)

type fakeLectureRepo struct {
	mu        sync.Mutex
	lectures  map[int]domain.Lecture
	nextID    int
	saveCalls int
}

func newFakeLectureRepo() *fakeLectureRepo {
	return &fakeLectureRepo{lectures: map[int]domain.Lecture{}, nextID: 1}
}

func (f *fakeLectureRepo) FindByID(_ context.Context, id int) (domain.Lecture, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lecture, ok := f.lectures[id]
	if !ok {
		return domain.Lecture{}, domain.ErrNotFound
	}
	return lecture, nil
}

func (f *fakeLectureRepo) FindByName(_ context.Context, name string) (domain.Lecture, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, lecture := range f.lectures {
		if lecture.Name == name {
			return lecture, nil
		}
	}
	return domain.Lecture{}, domain.ErrNotFound
}

func (f *fakeLectureRepo) Save(_ context.Context, lecture domain.Lecture) (domain.Lecture, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++
	if lecture.ID == 0 {
		lecture.ID = f.nextID
		f.nextID++
	}
	f.lectures[lecture.ID] = lecture
	return lecture, nil
}

func (f *fakeLectureRepo) FindAll(_ context.Context, page, size int) ([]domain.Lecture, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int, 0, len(f.lectures))
	for id := range f.lectures {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	start := page * size
	var out []domain.Lecture
	for i := start; i < len(ids) && i < start+size; i++ {
		out = append(out, f.lectures[ids[i]])
	}
	return out, int64(len(ids)), nil
}

type identityRecord struct {
	identity domain.Identity
	hash     string
}

type fakeIdentityRepo struct {
	mu      sync.Mutex
	byEmail map[string]identityRecord
}

func newFakeIdentityRepo() *fakeIdentityRepo {
	return &fakeIdentityRepo{byEmail: map[string]identityRecord{}}
}

func (f *fakeIdentityRepo) FindBySubject(_ context.Context, subjectID string) (domain.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, record := range f.byEmail {
		if record.identity.SubjectID == subjectID {
			return record.identity, nil
		}
	}
	return domain.Identity{}, domain.ErrNotFound
}

func (f *fakeIdentityRepo) FindByEmail(_ context.Context, email string) (domain.Identity, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.byEmail[email]
	if !ok {
		return domain.Identity{}, "", domain.ErrNotFound
	}
	return record.identity, record.hash, nil
}

func (f *fakeIdentityRepo) Save(_ context.Context, identity domain.Identity, passwordHash string) (domain.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byEmail[identity.Email]; ok {
		return domain.Identity{}, domain.ErrConflict
	}
	f.byEmail[identity.Email] = identityRecord{identity: identity, hash: passwordHash}
	return identity, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func (fakeHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return domain.ErrBadCredentials
	}
	return nil
}

type fakeTokens struct {
	issued []string
}

func (f *fakeTokens) Issue(subjectID string) (string, error) {
	f.issued = append(f.issued, subjectID)
	return "token-" + subjectID, nil
}

func (f *fakeTokens) Verify(_ context.Context, token string) (domain.Identity, error) {
	return domain.Identity{}, domain.ErrTokenMalformed
}
