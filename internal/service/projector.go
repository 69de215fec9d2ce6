package service

import (
	"fmt"

	"league-radar/internal/domain"
	"league-radar/internal/riot"
)

// ProjectMatch reshapes one raw match record into a summary relative to the
// tracked player. Returns nil when the record lacks its info section.
func ProjectMatch(match *riot.Match, trackedPUUID string, assets ChampionAssets) *domain.CompletedMatchSummary {
	if match == nil || match.Info == nil {
		return nil
	}
	info := match.Info

	summary := &domain.CompletedMatchSummary{
		// Defaults for a malformed record where the tracked player is
		// missing from the participant list.
		Win:      false,
		Champion: "",
		KDA:      "N/A",
	}

	for _, team := range info.Teams {
		names := make([]string, 0, len(team.Bans))
		for _, ban := range team.Bans {
			names = append(names, assets.ChampionName(ban.ChampionID))
		}
		switch team.TeamID {
		case riot.TeamOneID:
			summary.BansTeamOne = names
		case riot.TeamTwoID:
			summary.BansTeamTwo = names
		}
	}

	for _, p := range info.Participants {
		entry := domain.RosterEntry{
			Name:     p.DisplayName(),
			TagLine:  p.RiotIDTagline,
			Champion: championDisplay(p, assets),
		}
		switch p.TeamID {
		case riot.TeamOneID:
			summary.RosterTeamOne = append(summary.RosterTeamOne, entry)
		case riot.TeamTwoID:
			summary.RosterTeamTwo = append(summary.RosterTeamTwo, entry)
		}

		if p.PUUID == trackedPUUID {
			summary.Win = p.Win
			summary.Champion = entry.Champion
			summary.KDA = formatKDA(p.Kills, p.Deaths, p.Assists)
		}
	}

	return summary
}

// championDisplay prefers the name carried on the record and falls back to
// the asset table for records that only carry the numeric id.
func championDisplay(p riot.MatchParticipant, assets ChampionAssets) string {
	if p.ChampionName != "" {
		return p.ChampionName
	}
	return assets.ChampionName(p.ChampionID)
}

func formatKDA(kills, deaths, assists int) string {
	return fmt.Sprintf("%d/%d/%d", kills, deaths, assists)
}
