package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/katalvlaran/heatpath/dijkstra"
	"github.com/katalvlaran/heatpath/dijkstra/mocks"
)

// TestSearch_CallSequence pins down how Search drives a Space: seeds first,
// then IsGoal before Successors for every finalized state, and never
// Successors on a goal.
func TestSearch_CallSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	space := mocks.NewMockSpace[int](ctrl)
	gomock.InOrder(
		space.EXPECT().Initial().Return([]dijkstra.Step[int]{{State: 1, Cost: 0}}),
		space.EXPECT().IsGoal(1).Return(false),
		space.EXPECT().Successors(1).Return([]dijkstra.Step[int]{
			{State: 2, Cost: 5},
			{State: 3, Cost: 1},
		}),
		space.EXPECT().IsGoal(3).Return(false),
		space.EXPECT().Successors(3).Return([]dijkstra.Step[int]{{State: 2, Cost: 1}}),
		space.EXPECT().IsGoal(2).Return(true),
	)

	res, err := dijkstra.Search[int](space, dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, int64(2), res.Cost)
	require.Equal(t, []int{1, 3, 2}, res.Path)
	require.Equal(t, 3, res.Finalized)
}

// TestSearch_StopsOnExhaustion verifies that a Space with no goal is
// explored exactly once per state before ErrNoPath.
func TestSearch_StopsOnExhaustion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	space := mocks.NewMockSpace[string](ctrl)
	space.EXPECT().Initial().Return([]dijkstra.Step[string]{{State: "a", Cost: 2}}).Times(1)
	space.EXPECT().IsGoal(gomock.Any()).Return(false).Times(2)
	space.EXPECT().Successors("a").Return([]dijkstra.Step[string]{{State: "b", Cost: 0}}).Times(1)
	space.EXPECT().Successors("b").Return([]dijkstra.Step[string]{{State: "a", Cost: 0}}).Times(1)

	res, err := dijkstra.Search[string](space)
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
	require.Equal(t, 2, res.Finalized)
}
