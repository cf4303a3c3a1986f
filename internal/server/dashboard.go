package server

import (
	"html/template"
	"strings"

	"github.com/OmiShrestha/rpi5-system-info/internal/hostinfo"
)

type dashboardData struct {
	Hostname string
	Platform string
}

func platformLabel(info hostinfo.Info) string {
	parts := make([]string, 0, 3)
	if info.Platform != "" {
		parts = append(parts, info.Platform)
	}
	if info.PlatformVersion != "" {
		parts = append(parts, info.PlatformVersion)
	}
	if info.Architecture != "" {
		parts = append(parts, info.Architecture)
	}
	if len(parts) == 0 {
		return info.OS
	}

	return strings.Join(parts, " ")
}

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardHTML))

const dashboardHTML = `<!doctype html>
<html lang="en">
	<head>
		<meta charset="utf-8" />
		<meta name="viewport" content="width=device-width,initial-scale=1" />
		<title>{{.Hostname}} system information</title>
		<style>
			body { font-family: system-ui, -apple-system, Roboto, Arial; margin: 2rem; }
			.card { border: 1px solid #ddd; padding: 1rem; border-radius: 8px; max-width: 480px }
			.row { display:flex; justify-content:space-between; margin:0.5rem 0 }
			strong { color: #333 }
			.muted { color: #666 }
		</style>
	</head>
	<body>
		<h1>{{.Hostname}} system information</h1>
		<p class="muted">{{.Platform}}</p>
		<div class="card">
			<div id="status">
				<div class="row"><div class="muted">CPU Temp</div><div id="cpu_temp">--</div></div>
				<div class="row"><div class="muted">RAM Used</div><div id="ram_used">--</div></div>
				<div class="row"><div class="muted">RAM Free</div><div id="ram_free">--</div></div>
				<div class="row"><div class="muted">Uptime</div><div id="uptime">--</div></div>
				<div class="row"><div class="muted">Last Updated</div><div id="updated">--</div></div>
			</div>
		</div>

		<script>
			async function fetchStatus(){
				try{
					const r = await fetch('/api/status');
					const j = await r.json();
					document.getElementById('cpu_temp').textContent = j.cpu_temp_c===null ? 'N/A' : j.cpu_temp_c + ' °C';
					document.getElementById('ram_used').textContent = j.ram.used_mb + ' MB (' + j.ram.used_percent + '%)';
					document.getElementById('ram_free').textContent = j.ram.available_mb + ' MB';
					document.getElementById('uptime').textContent = j.uptime.human;
					document.getElementById('updated').textContent = new Date(j.timestamp*1000).toLocaleString();
				}catch(e){
					console.error(e);
				}
			}
			fetchStatus();
			setInterval(fetchStatus, 5000);
		</script>
	</body>
</html>
`
