package shell

// shellPage is the thin client. It keeps no application state: it forwards
// hash changes and DOM events over the WebSocket and swaps whatever HTML
// comes back into the named regions.
const shellPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Wardview</title>
<link rel="stylesheet" href="/static/wardview.css">
</head>
<body>
<div id="nav"></div>
<div id="main"></div>
<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");
  var regions = { main: document.getElementById("main"), nav: document.getElementById("nav") };

  function send(frame) {
    if (ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify(frame));
    }
  }

  ws.onmessage = function (msg) {
    var frame = JSON.parse(msg.data);
    if (frame.type === "render") {
      var region = regions[frame.region];
      if (region) region.innerHTML = frame.html;
    } else if (frame.type === "location") {
      if (location.hash !== frame.location) {
        history.replaceState(null, "", frame.location || "#/");
      }
    }
  };

  window.addEventListener("hashchange", function () {
    send({ type: "navigate", location: location.hash });
  });

  document.addEventListener("click", function (e) {
    var bound = e.target.closest("[data-wv]");
    if (bound && bound.dataset.onClick) {
      e.preventDefault();
      send({ type: "event", target: bound.dataset.wv, event: "click" });
    }
  });

  document.addEventListener("input", function (e) {
    var bound = e.target.closest("[data-wv]");
    if (bound && bound.dataset.onInput) {
      send({ type: "event", target: bound.dataset.wv, event: "input", value: e.target.value });
    }
  });

  document.addEventListener("change", function (e) {
    var bound = e.target.closest("[data-wv]");
    if (bound && bound.dataset.onChange) {
      send({ type: "event", target: bound.dataset.wv, event: "change", value: e.target.value });
    }
  });

  document.addEventListener("submit", function (e) {
    var bound = e.target.closest("[data-wv]");
    if (!bound) return;
    e.preventDefault();
    var form = {};
    new FormData(e.target).forEach(function (value, key) { form[key] = value; });
    send({ type: "submit", target: bound.dataset.wv, event: "submit", form: form });
  });

  ws.onopen = function () {
    send({ type: "navigate", location: location.hash });
    setInterval(function () { send({ type: "ping" }); }, 25000);
  };
})();
</script>
</body>
</html>
`

// shellStylesheet is the minimal default styling for the dashboard regions.
const shellStylesheet = `body { font-family: system-ui, sans-serif; margin: 0; color: #1a2330; }
#nav .navbar { display: flex; justify-content: space-between; padding: 0.6rem 1rem; background: #103a5c; }
#nav .navbar a { color: #fff; margin-right: 1rem; text-decoration: none; }
#nav .navbar .logout { background: none; border: 1px solid #fff; color: #fff; cursor: pointer; }
#main { max-width: 64rem; margin: 1.5rem auto; padding: 0 1rem; }
.field { margin-bottom: 0.8rem; }
.field label { display: block; margin-bottom: 0.2rem; font-weight: 600; }
.field input, .field select, .field textarea { width: 100%; max-width: 28rem; padding: 0.4rem; }
.field-error { display: block; color: #a4242b; }
.error-summary, .banner-error { background: #fbe4e5; color: #a4242b; padding: 0.6rem 0.8rem; margin-bottom: 1rem; }
.banner-ok { background: #e2f4e6; color: #1d6b34; padding: 0.6rem 0.8rem; margin-bottom: 1rem; }
table.records { border-collapse: collapse; width: 100%; }
table.records th, table.records td { border-bottom: 1px solid #d8dee6; padding: 0.4rem 0.6rem; text-align: left; }
.record-row { cursor: pointer; }
.pager { display: flex; gap: 1rem; align-items: center; margin-top: 1rem; }
.stat-card { display: inline-block; padding: 1rem 1.4rem; background: #eef3f8; }
.stat-card strong { display: block; font-size: 1.6rem; }
.vitals-grid { display: grid; grid-template-columns: repeat(3, minmax(8rem, 14rem)); gap: 0.6rem 1rem; }
`
