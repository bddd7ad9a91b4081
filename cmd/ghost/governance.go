package main

import (
	"fmt"
	"time"

	"github.com/tdex-network/ghost-wallet/internal/core/domain"
	"github.com/urfave/cli/v2"
)

var balances = cli.Command{
	Name:   "balances",
	Usage:  "show the token balances and the voting power of the wallet",
	Action: balancesAction,
}

var proposals = cli.Command{
	Name:   "proposals",
	Usage:  "list the governance proposals",
	Action: proposalsAction,
}

var propose = cli.Command{
	Name:  "propose",
	Usage: "create a new governance proposal",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "title",
			Usage:    "the title of the proposal (5-100 chars)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "description",
			Usage:    "the description of the proposal (20-1000 chars)",
			Required: true,
		},
	},
	Action: proposeAction,
}

var vote = cli.Command{
	Name:  "vote",
	Usage: "vote on a governance proposal",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "proposal",
			Usage:    "the id of the proposal",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "against",
			Usage: "vote against the proposal instead of in favour",
		},
	},
	Action: voteAction,
}

func balancesAction(ctx *cli.Context) error {
	session, _, cleanup, err := getInitializedSession(ctx.Context)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := session.FetchBalances(ctx.Context); err != nil {
		return err
	}

	tokens := session.State().Tokens
	list := make([]map[string]interface{}, 0, len(tokens))
	for _, t := range tokens {
		list = append(list, map[string]interface{}{
			"symbol":  t.Symbol,
			"name":    t.Name,
			"balance": t.FormatBalance(),
		})
	}
	printJSON(map[string]interface{}{
		"tokens":       list,
		"voting_power": domain.VotingPower(tokens).StringFixed(2),
	})
	return nil
}

func proposalsAction(ctx *cli.Context) error {
	session, _, cleanup, err := getInitializedSession(ctx.Context)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := session.FetchProposals(ctx.Context); err != nil {
		return err
	}

	state := session.State()
	list := make([]map[string]interface{}, 0, len(state.Proposals))
	for _, p := range state.Proposals {
		list = append(list, proposalInfo(p))
	}
	printJSON(list)
	return nil
}

func proposeAction(ctx *cli.Context) error {
	title, description := ctx.String("title"), ctx.String("description")
	if err := domain.ValidateProposal(title, description); err != nil {
		return err
	}

	session, _, cleanup, err := getInitializedSession(ctx.Context)
	if err != nil {
		return err
	}
	defer cleanup()

	proposal, err := session.CreateProposal(ctx.Context, title, description)
	if err != nil {
		return err
	}

	printJSON(proposalInfo(proposal))
	return nil
}

func voteAction(ctx *cli.Context) error {
	session, _, cleanup, err := getInitializedSession(ctx.Context)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := session.FetchProposals(ctx.Context); err != nil {
		return err
	}

	proposalID := ctx.String("proposal")
	v, err := session.CastVote(ctx.Context, proposalID, !ctx.Bool("against"))
	if err != nil {
		return err
	}

	state := session.State()
	i := domain.FindProposal(state.Proposals, proposalID)
	info := proposalInfo(state.Proposals[i])
	info["vote"] = map[string]interface{}{
		"id":          v.ID,
		"support":     v.Support,
		"vote_weight": v.VoteWeight,
	}
	printJSON(info)
	return nil
}

func proposalInfo(p domain.Proposal) map[string]interface{} {
	return map[string]interface{}{
		"id":            p.ID,
		"title":         p.Title,
		"description":   p.Description,
		"creator":       p.Creator,
		"status":        p.Status,
		"votes_for":     p.VotesFor,
		"votes_against": p.VotesAgainst,
		"approval":      fmt.Sprintf("%.1f%%", p.ApprovalPercentage()),
		"executed":      p.Executed,
		"start_date":    p.StartDate.Format(time.RFC3339),
		"end_date":      p.EndDate.Format(time.RFC3339),
	}
}
