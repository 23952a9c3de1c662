package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/hirewire/fitrank/internal/adapters/repository"
	"github.com/hirewire/fitrank/internal/domain/model"
)

func TestMemStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given an in-memory store", t, func() {
		proj := model.Project{ID: uuid.New(), Name: "Enterprise AE"}
		cand := model.Candidate{ID: uuid.New(), Name: "Dana"}
		pos := model.Position{ID: uuid.New(), CandidateID: cand.ID, Role: "AE", StartMonth: 1, StartYear: 2020}
		app := model.Application{ID: uuid.New(), ProjectID: proj.ID, CandidateID: cand.ID, OTE: 80_000}

		store := repository.NewMemStore(
			repository.WithProjects(proj),
			repository.WithApplications(app),
		)
		store.AddCandidate(cand, pos)

		Convey("When looking up seeded records", func() {
			gotProj, err := store.Project(ctx, proj.ID)
			So(err, ShouldBeNil)
			So(gotProj.Name, ShouldEqual, "Enterprise AE")

			gotCand, err := store.Candidate(ctx, cand.ID)
			So(err, ShouldBeNil)
			So(gotCand.Name, ShouldEqual, "Dana")

			apps, err := store.Applications(ctx, proj.ID)
			So(err, ShouldBeNil)
			So(apps, ShouldHaveLength, 1)

			positions, err := store.Positions(ctx, cand.ID)
			So(err, ShouldBeNil)
			So(positions, ShouldHaveLength, 1)
			So(positions[0].Role, ShouldEqual, "AE")
		})

		Convey("When looking up unknown records", func() {
			_, err := store.Project(ctx, uuid.New())
			So(errors.Is(err, repository.ErrProjectNotFound), ShouldBeTrue)

			_, err = store.Candidate(ctx, uuid.New())
			So(errors.Is(err, repository.ErrCandidateNotFound), ShouldBeTrue)
		})

		Convey("When a project has no applications", func() {
			apps, err := store.Applications(ctx, uuid.New())
			So(err, ShouldBeNil)
			So(apps, ShouldBeEmpty)
		})

		Convey("When recording visits", func() {
			count, err := store.VisitorCount(ctx, proj.ID)
			So(err, ShouldBeNil)
			So(count, ShouldEqual, 0)

			store.RecordVisit(proj.ID)
			store.RecordVisit(proj.ID)

			count, err = store.VisitorCount(ctx, proj.ID)
			So(err, ShouldBeNil)
			So(count, ShouldEqual, 2)
		})
	})
}
