package riot

import "strings"

// platformHosts routes summoner-v4 and spectator-v5 calls, which live on
// the per-platform shards.
var platformHosts = map[string]string{
	"br1":  "br1.api.riotgames.com",
	"eun1": "eun1.api.riotgames.com",
	"euw1": "euw1.api.riotgames.com",
	"jp1":  "jp1.api.riotgames.com",
	"kr":   "kr.api.riotgames.com",
	"la1":  "la1.api.riotgames.com",
	"la2":  "la2.api.riotgames.com",
	"na1":  "na1.api.riotgames.com",
	"oc1":  "oc1.api.riotgames.com",
	"tr1":  "tr1.api.riotgames.com",
	"ru":   "ru.api.riotgames.com",
	"ph2":  "ph2.api.riotgames.com",
	"sg2":  "sg2.api.riotgames.com",
	"th2":  "th2.api.riotgames.com",
	"tw2":  "tw2.api.riotgames.com",
	"vn2":  "vn2.api.riotgames.com",
}

// regionalClusters routes account-v1 and match-v5 calls, which live on the
// continental clusters.
var regionalClusters = map[string]string{
	"br1":  "americas.api.riotgames.com",
	"la1":  "americas.api.riotgames.com",
	"la2":  "americas.api.riotgames.com",
	"na1":  "americas.api.riotgames.com",
	"oc1":  "sea.api.riotgames.com",
	"kr":   "asia.api.riotgames.com",
	"jp1":  "asia.api.riotgames.com",
	"ph2":  "sea.api.riotgames.com",
	"sg2":  "sea.api.riotgames.com",
	"th2":  "sea.api.riotgames.com",
	"tw2":  "sea.api.riotgames.com",
	"vn2":  "sea.api.riotgames.com",
	"eun1": "europe.api.riotgames.com",
	"euw1": "europe.api.riotgames.com",
	"tr1":  "europe.api.riotgames.com",
	"ru":   "europe.api.riotgames.com",
}

func PlatformHost(region string) (string, bool) {
	host, ok := platformHosts[strings.ToLower(region)]
	return host, ok
}

func RegionalHost(region string) (string, bool) {
	host, ok := regionalClusters[strings.ToLower(region)]
	return host, ok
}
